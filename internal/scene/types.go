package scene

import "math"

// Vec2 is a 2-D vector. Positions are world units, velocities are
// whatever the caller says they are.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Dot returns v·o. Dot of a vector with itself is its squared length.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
