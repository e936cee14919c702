package camera

import (
	"math"
	"time"

	"github.com/trajview/trajview/internal/scene"
)

// State is the controller's interaction state.
type State int

const (
	// Idle: no interaction, ticks are no-ops.
	Idle State = iota
	// Panning: pointer button held, camera follows the drag.
	Panning
	// Animating: button released, inertial pan decaying toward rest.
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case Animating:
		return "animating"
	}
	return "unknown"
}

const (
	// decayTau is the time constant of the inertial pan decay.
	decayTau = 100 * time.Millisecond
	// restEnergy is the squared velocity (px²/s²) below which the
	// animation snaps to Idle. Contractual: changing it changes the feel.
	restEnergy = 100.0

	zoomSpeed        = 0.2
	zoomSpeedPrecise = 0.05
	// wheelNotch is the wheel delta of one detent on a standard mouse.
	wheelNotch = 120.0
)

// Controller converts pointer and wheel events into camera mutations.
// Pointer positions are in screen pixels, velocities in pixels/second.
type Controller struct {
	cam *Camera

	state      State
	prevPos    scene.Vec2
	prevTime   time.Time
	vel        scene.Vec2
	initialVel scene.Vec2
	decayStart time.Time
}

func NewController(cam *Camera) *Controller {
	return &Controller{cam: cam}
}

func (c *Controller) State() State { return c.state }

// Active reports whether the controller needs tick callbacks. The host
// pauses its tick source entirely while this is false.
func (c *Controller) Active() bool { return c.state != Idle }

// Press starts a drag, cancelling any running inertial animation.
func (c *Controller) Press(pos scene.Vec2, t time.Time) {
	c.state = Panning
	c.prevPos = pos
	c.prevTime = t
	c.vel = scene.Vec2{}
}

// Move applies a drag step. Screen x grows rightward while the camera
// moves the opposite way, hence the sign flip on x; world y is up, so y
// passes through. Reports whether the view needs a redraw.
func (c *Controller) Move(pos scene.Vec2, t time.Time) bool {
	if c.state != Panning {
		return false
	}

	d := pos.Sub(c.prevPos)
	ps := c.cam.PixelSize()
	c.cam.Translate(scene.Vec2{X: -d.X * ps, Y: d.Y * ps})

	if dt := t.Sub(c.prevTime).Seconds(); dt > 0 {
		c.vel = d.Scale(1 / dt)
	}
	c.prevPos = pos
	c.prevTime = t
	return true
}

// Release ends the drag and starts the inertial pan with the last
// sampled velocity. The decay clock starts at the last drag sample so
// velocity is continuous across the release.
func (c *Controller) Release(t time.Time) {
	if c.state != Panning {
		return
	}
	c.state = Animating
	c.initialVel = c.vel
	c.decayStart = c.prevTime
}

// Tick advances the inertial animation. Reports whether the view needs
// a redraw; at Idle it mutates nothing and reports false.
func (c *Controller) Tick(now time.Time) bool {
	if c.state != Animating {
		return false
	}

	age := now.Sub(c.decayStart).Seconds()
	c.vel = c.initialVel.Scale(math.Exp(-age / decayTau.Seconds()))

	dt := now.Sub(c.prevTime).Seconds()
	ps := c.cam.PixelSize()
	c.cam.Translate(scene.Vec2{X: -c.vel.X * dt * ps, Y: c.vel.Y * dt * ps})
	c.prevTime = now

	if c.vel.Dot(c.vel) < restEnergy {
		c.state = Idle
	}
	return true
}

// Wheel zooms by a constant factor per wheel notch. A positive delta
// zooms in. Reports whether the view needs a redraw.
func (c *Controller) Wheel(delta float64, precise bool) bool {
	if delta == 0 {
		return false
	}
	speed := zoomSpeed
	if precise {
		speed = zoomSpeedPrecise
	}
	f := 1 - speed*delta/wheelNotch
	c.cam.SetHeight(c.cam.Height() * f)
	return true
}

// Velocity returns the current pan velocity in pixels/second.
func (c *Controller) Velocity() scene.Vec2 { return c.vel }
