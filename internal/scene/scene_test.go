package scene

import (
	"errors"
	"testing"
)

type fakeTraj struct {
	frames [][]Vec2
	fail   map[int]error
}

func (f *fakeTraj) NumFrames() int { return len(f.frames) }

func (f *fakeTraj) Frame(i int) (*Frame, error) {
	if err, ok := f.fail[i]; ok {
		return nil, err
	}
	pos := make([]Vec2, len(f.frames[i]))
	copy(pos, f.frames[i])
	return &Frame{Index: i, Positions: pos}, nil
}

func TestSetFrameClamps(t *testing.T) {
	tr := &fakeTraj{frames: [][]Vec2{{{0, 0}}, {{1, 1}}, {{2, 2}}}}
	s := New(tr)

	tests := []struct {
		request  int
		expected int
	}{
		{0, 0},
		{2, 2},
		{-5, 0},
		{99, 2},
	}

	for _, tt := range tests {
		if err := s.SetFrame(tt.request); err != nil {
			t.Fatalf("SetFrame(%d) failed: %v", tt.request, err)
		}
		if got := s.CurrentIndex(); got != tt.expected {
			t.Errorf("request %d: expected index %d, got %d", tt.request, tt.expected, got)
		}
	}
}

func TestSnapshotBeforeFirstFrame(t *testing.T) {
	s := New(&fakeTraj{frames: [][]Vec2{{{0, 0}}}})

	if s.Snapshot() != nil {
		t.Error("expected nil snapshot before first SetFrame")
	}
	if s.CurrentIndex() != -1 {
		t.Errorf("expected index -1, got %d", s.CurrentIndex())
	}
}

func TestSetFrameEmpty(t *testing.T) {
	s := New(&fakeTraj{})
	if err := s.SetFrame(0); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestFailedFrameKeepsOldSnapshot(t *testing.T) {
	boom := errors.New("boom")
	tr := &fakeTraj{
		frames: [][]Vec2{{{0, 0}}, {{1, 1}}},
		fail:   map[int]error{1: boom},
	}
	s := New(tr)

	if err := s.SetFrame(0); err != nil {
		t.Fatalf("SetFrame(0) failed: %v", err)
	}
	if err := s.SetFrame(1); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("failed load should keep frame 0 visible, got %d", got)
	}
}

func TestSnapshotIsComplete(t *testing.T) {
	tr := &fakeTraj{frames: [][]Vec2{{{1, 2}, {3, 4}}}}
	s := New(tr)
	if err := s.SetFrame(0); err != nil {
		t.Fatal(err)
	}

	f := s.Snapshot()
	if len(f.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(f.Positions))
	}
	if f.Positions[1] != (Vec2{3, 4}) {
		t.Errorf("unexpected position: %+v", f.Positions[1])
	}
}
