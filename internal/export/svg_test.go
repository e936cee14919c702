package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trajview/trajview/internal/camera"
	"github.com/trajview/trajview/internal/scene"
)

func testCamera() *camera.Camera {
	cam := camera.New()
	cam.SetHeight(720)
	cam.SetResolution(720)
	cam.SetAspect(1280.0 / 720.0)
	return cam
}

func TestFrameSVGContainsParticles(t *testing.T) {
	f := &scene.Frame{
		Index:     0,
		Positions: []scene.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}

	svg := FrameSVG(f, testCamera(), DefaultSVGOptions())

	if !strings.Contains(svg, `width="1280"`) {
		t.Error("missing viewport width")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
	// Camera at origin: world origin projects to viewport center.
	if !strings.Contains(svg, `cx="640.00" cy="360.00"`) {
		t.Error("origin particle not at viewport center")
	}
}

func TestFrameSVGCullsOffscreen(t *testing.T) {
	f := &scene.Frame{
		Positions: []scene.Vec2{{X: 0, Y: 0}, {X: 1e6, Y: 1e6}},
	}

	svg := FrameSVG(f, testCamera(), DefaultSVGOptions())
	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Errorf("expected offscreen particle culled, got %d circles", got)
	}
}

func TestFrameSVGNilFrame(t *testing.T) {
	svg := FrameSVG(nil, testCamera(), DefaultSVGOptions())
	if !strings.Contains(svg, "<svg") || strings.Contains(svg, "<circle") {
		t.Error("nil frame should render an empty document")
	}
}

func TestWriteFrameSVG(t *testing.T) {
	f := &scene.Frame{Positions: []scene.Vec2{{X: 0, Y: 0}}}
	path := filepath.Join(t.TempDir(), "frame.svg")

	if err := WriteFrameSVG(path, f, testCamera(), DefaultSVGOptions()); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("written file is not a complete SVG document")
	}
}
