package traj

import (
	"math"
	"math/rand"
	"time"

	"github.com/trajview/trajview/internal/scene"
)

// Orbits generates n particles on circular orbits around the origin,
// inner orbits faster than outer ones. Deterministic for a given seed.
func Orbits(n, frames int, dt float64, seed int64) (*Trajectory, error) {
	rng := rand.New(rand.NewSource(seed))

	radius := make([]float64, n)
	phase := make([]float64, n)
	for i := 0; i < n; i++ {
		radius[i] = 5 + rng.Float64()*45
		phase[i] = rng.Float64() * 2 * math.Pi
	}

	data := make([][]scene.Vec2, frames)
	for f := 0; f < frames; f++ {
		t := float64(f) * dt
		frame := make([]scene.Vec2, n)
		for i := 0; i < n; i++ {
			// Keplerian-ish: angular velocity falls off with r^1.5.
			omega := 20 / math.Pow(radius[i], 1.5)
			a := phase[i] + omega*t
			frame[i] = scene.Vec2{
				X: radius[i] * math.Cos(a),
				Y: radius[i] * math.Sin(a),
			}
		}
		data[f] = frame
	}

	return NewTrajectory(Meta{
		Name:      "orbits",
		Dt:        dt,
		Generator: "orbits",
		Created:   time.Now().UTC(),
	}, data)
}

// Brownian generates n particles on independent random walks starting
// inside a 100×100 box. Deterministic for a given seed.
func Brownian(n, frames int, dt float64, seed int64) (*Trajectory, error) {
	rng := rand.New(rand.NewSource(seed))

	cur := make([]scene.Vec2, n)
	for i := range cur {
		cur[i] = scene.Vec2{
			X: (rng.Float64() - 0.5) * 100,
			Y: (rng.Float64() - 0.5) * 100,
		}
	}

	step := 10 * math.Sqrt(dt)
	data := make([][]scene.Vec2, frames)
	for f := 0; f < frames; f++ {
		frame := make([]scene.Vec2, n)
		copy(frame, cur)
		data[f] = frame
		for i := range cur {
			cur[i].X += rng.NormFloat64() * step
			cur[i].Y += rng.NormFloat64() * step
		}
	}

	return NewTrajectory(Meta{
		Name:      "brownian",
		Dt:        dt,
		Generator: "brownian",
		Created:   time.Now().UTC(),
	}, data)
}
