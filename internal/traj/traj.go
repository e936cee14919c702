package traj

import (
	"errors"
	"fmt"
	"time"

	"github.com/trajview/trajview/internal/scene"
)

var (
	// ErrEmpty indicates a trajectory with no frames or no particles.
	ErrEmpty = errors.New("traj: empty trajectory")

	// ErrCorrupt indicates an on-disk trajectory that cannot be parsed.
	ErrCorrupt = errors.New("traj: corrupt trajectory data")

	// ErrFrameRange indicates a frame index outside the trajectory.
	ErrFrameRange = errors.New("traj: frame index out of range")
)

// Meta describes a stored trajectory.
type Meta struct {
	Name      string    `json:"name"`
	Particles int       `json:"particles"`
	Frames    int       `json:"frames"`
	Dt        float64   `json:"dt"`
	Generator string    `json:"generator,omitempty"`
	Created   time.Time `json:"created"`
}

// Trajectory is an in-memory recording: Frames×Particles positions.
// Implements scene.Trajectory.
type Trajectory struct {
	Meta   Meta
	frames [][]scene.Vec2
}

// NewTrajectory wraps frame data in a Trajectory. Every frame must have
// the same particle count.
func NewTrajectory(meta Meta, frames [][]scene.Vec2) (*Trajectory, error) {
	if len(frames) == 0 || len(frames[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(frames[0])
	for i, f := range frames {
		if len(f) != n {
			return nil, fmt.Errorf("%w: frame %d has %d particles, expected %d",
				ErrCorrupt, i, len(f), n)
		}
	}
	meta.Frames = len(frames)
	meta.Particles = n
	return &Trajectory{Meta: meta, frames: frames}, nil
}

func (t *Trajectory) NumFrames() int { return len(t.frames) }

// Frame materializes frame i with per-particle speeds derived from the
// previous frame. The returned frame owns its storage.
func (t *Trajectory) Frame(i int) (*scene.Frame, error) {
	if i < 0 || i >= len(t.frames) {
		return nil, fmt.Errorf("%w: %d of %d", ErrFrameRange, i, len(t.frames))
	}

	src := t.frames[i]
	pos := make([]scene.Vec2, len(src))
	copy(pos, src)

	speeds := make([]float64, len(src))
	if i > 0 && t.Meta.Dt > 0 {
		prev := t.frames[i-1]
		for j := range src {
			speeds[j] = src[j].Sub(prev[j]).Len() / t.Meta.Dt
		}
	}

	return &scene.Frame{Index: i, Positions: pos, Speeds: speeds}, nil
}

// Positions returns the raw positions of frame i for read-only use by
// callers that bypass the scene (bounds fitting, export).
func (t *Trajectory) Positions(i int) []scene.Vec2 {
	if i < 0 || i >= len(t.frames) {
		return nil
	}
	return t.frames[i]
}
