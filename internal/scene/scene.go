package scene

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrNoFrames indicates a trajectory with nothing to display.
var ErrNoFrames = errors.New("scene: trajectory has no frames")

// Frame is one displayable snapshot of the particle system. Frames are
// immutable once returned by a Trajectory; the Scene publishes them by
// pointer and the renderer reads them without locking.
type Frame struct {
	Index     int
	Positions []Vec2
	// Speeds holds per-particle speed in world units per second, used for
	// coloring. May be nil when the trajectory cannot derive it.
	Speeds []float64
}

// Trajectory is a source of frames.
type Trajectory interface {
	NumFrames() int
	// Frame materializes frame i. The returned frame must not alias
	// mutable internal storage.
	Frame(i int) (*Frame, error)
}

// Scene pairs a trajectory with the frame currently on display.
type Scene struct {
	traj    Trajectory
	current atomic.Pointer[Frame]
}

func New(traj Trajectory) *Scene {
	return &Scene{traj: traj}
}

func (s *Scene) NumFrames() int {
	return s.traj.NumFrames()
}

// SetFrame materializes frame i and publishes it. Out-of-range indices
// are clamped; every caller is a UI gesture, not a protocol. The
// previously published frame stays visible if materialization fails.
func (s *Scene) SetFrame(i int) error {
	n := s.traj.NumFrames()
	if n == 0 {
		return ErrNoFrames
	}
	if i < 0 {
		i = 0
	} else if i >= n {
		i = n - 1
	}
	f, err := s.traj.Frame(i)
	if err != nil {
		return fmt.Errorf("scene: frame %d: %w", i, err)
	}
	s.current.Store(f)
	return nil
}

// Snapshot returns the last complete published frame, or nil before the
// first SetFrame. The result is safe to read from any goroutine.
func (s *Scene) Snapshot() *Frame {
	return s.current.Load()
}

// CurrentIndex reports the index of the published frame, -1 if none.
func (s *Scene) CurrentIndex() int {
	f := s.current.Load()
	if f == nil {
		return -1
	}
	return f.Index
}
