package camera

import (
	"math"
	"testing"

	"github.com/trajview/trajview/internal/scene"
)

func TestPixelSize(t *testing.T) {
	cam := New()
	cam.SetHeight(200)
	cam.SetResolution(1000)

	if got := cam.PixelSize(); got != 0.2 {
		t.Errorf("expected pixel size 0.2, got %f", got)
	}
}

func TestSetHeightClamped(t *testing.T) {
	cam := New()
	cam.SetHeight(0)
	if cam.Height() <= 0 {
		t.Errorf("height must stay positive, got %f", cam.Height())
	}
	cam.SetHeight(-5)
	if cam.Height() <= 0 {
		t.Errorf("height must stay positive, got %f", cam.Height())
	}
}

func TestResize(t *testing.T) {
	cam := New()
	cam.Resize(1600, 800)

	if cam.Aspect() != 2.0 {
		t.Errorf("expected aspect 2.0, got %f", cam.Aspect())
	}
	if cam.Resolution() != 800 {
		t.Errorf("expected resolution 800, got %f", cam.Resolution())
	}

	// Degenerate sizes are ignored.
	cam.Resize(0, 0)
	if cam.Aspect() != 2.0 || cam.Resolution() != 800 {
		t.Error("zero-size resize should not change the camera")
	}
}

func TestToScreenCenter(t *testing.T) {
	cam := New()
	cam.SetPosition(scene.Vec2{X: 3, Y: -2})

	sx, sy := cam.ToScreen(scene.Vec2{X: 3, Y: -2}, 800, 600)
	if sx != 400 || sy != 300 {
		t.Errorf("camera center must project to viewport center, got (%f, %f)", sx, sy)
	}
}

func TestToScreenOrientation(t *testing.T) {
	cam := New()
	cam.SetHeight(600)
	cam.SetResolution(600) // pixel size 1

	// +x world is right on screen, +y world is up on screen.
	sx, _ := cam.ToScreen(scene.Vec2{X: 10, Y: 0}, 800, 600)
	if sx <= 400 {
		t.Errorf("world +x should project right of center, got %f", sx)
	}
	_, sy := cam.ToScreen(scene.Vec2{X: 0, Y: 10}, 800, 600)
	if sy >= 300 {
		t.Errorf("world +y should project above center, got %f", sy)
	}
}

func TestFitBounds(t *testing.T) {
	cam := New()
	cam.SetAspect(1)
	cam.FitBounds([]scene.Vec2{{X: -10, Y: -10}, {X: 10, Y: 10}})

	if cam.Position() != (scene.Vec2{}) {
		t.Errorf("expected centered camera, got %+v", cam.Position())
	}
	if math.Abs(cam.Height()-22) > 1e-9 {
		t.Errorf("expected height 22, got %f", cam.Height())
	}
}
