package camera

import "github.com/trajview/trajview/internal/scene"

// minHeight keeps the camera from collapsing to a zero or negative
// viewport. A zero height would make PixelSize zero and freeze panning.
const minHeight = 1e-6

// Camera describes a 2-D view into the world: a center position and the
// world-space height of the viewport. Width follows from the aspect
// ratio. Mutated only by the Controller; read by the renderer each frame.
type Camera struct {
	position   scene.Vec2
	height     float64
	aspect     float64
	resolution float64 // viewport height in pixels
}

func New() *Camera {
	return &Camera{height: 100, aspect: 1, resolution: 720}
}

func (c *Camera) Position() scene.Vec2 { return c.position }

func (c *Camera) SetPosition(p scene.Vec2) { c.position = p }

func (c *Camera) Translate(delta scene.Vec2) {
	c.position = c.position.Add(delta)
}

func (c *Camera) Height() float64 { return c.height }

// SetHeight sets the world height of the viewport, clamped to a small
// positive minimum.
func (c *Camera) SetHeight(h float64) {
	if h < minHeight {
		h = minHeight
	}
	c.height = h
}

// Width returns the world width of the viewport.
func (c *Camera) Width() float64 { return c.height * c.aspect }

func (c *Camera) Aspect() float64 { return c.aspect }

func (c *Camera) SetAspect(a float64) {
	if a > 0 {
		c.aspect = a
	}
}

func (c *Camera) Resolution() float64 { return c.resolution }

// SetResolution records the viewport height in pixels.
func (c *Camera) SetResolution(px float64) {
	if px > 0 {
		c.resolution = px
	}
}

// Resize updates aspect and resolution from a new viewport size.
func (c *Camera) Resize(w, h int) {
	if w > 0 && h > 0 {
		c.aspect = float64(w) / float64(h)
		c.resolution = float64(h)
	}
}

// PixelSize returns the world-space distance covered by one screen pixel.
func (c *Camera) PixelSize() float64 {
	return c.height / c.resolution
}

// ToScreen projects a world point into a w×h pixel viewport. World y
// points up, screen y points down.
func (c *Camera) ToScreen(p scene.Vec2, w, h int) (float64, float64) {
	ps := c.PixelSize()
	sx := float64(w)/2 + (p.X-c.position.X)/ps
	sy := float64(h)/2 - (p.Y-c.position.Y)/ps
	return sx, sy
}

// FitBounds centers the camera on the bounding box of the given points
// and sizes the height so everything is visible with a small margin.
func (c *Camera) FitBounds(points []scene.Vec2) {
	if len(points) == 0 {
		return
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	c.position = scene.Vec2{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}

	height := (max.Y - min.Y) * 1.1
	if c.aspect > 0 {
		if byWidth := (max.X - min.X) * 1.1 / c.aspect; byWidth > height {
			height = byWidth
		}
	}
	c.SetHeight(height)
}
