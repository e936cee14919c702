package player

import (
	"testing"
	"time"
)

func collect(requests *[]int) func(int) {
	return func(i int) { *requests = append(*requests, i) }
}

func TestGotoDedupes(t *testing.T) {
	var reqs []int
	p := New(10, collect(&reqs))

	p.Goto(3)
	p.Goto(3)
	p.Goto(3)

	if len(reqs) != 1 || reqs[0] != 3 {
		t.Errorf("expected single request [3], got %v", reqs)
	}
}

func TestGotoClamps(t *testing.T) {
	var reqs []int
	p := New(5, collect(&reqs))

	p.Goto(-2)
	p.Goto(99)

	if len(reqs) != 2 || reqs[0] != 0 || reqs[1] != 4 {
		t.Errorf("expected [0 4], got %v", reqs)
	}
}

func TestStepWraps(t *testing.T) {
	var reqs []int
	p := New(3, collect(&reqs))

	p.Last()
	p.Next()
	if p.Current() != 0 {
		t.Errorf("Next past end should wrap to 0, got %d", p.Current())
	}

	p.Prev()
	if p.Current() != 2 {
		t.Errorf("Prev before start should wrap to 2, got %d", p.Current())
	}
}

func TestFirstLast(t *testing.T) {
	var reqs []int
	p := New(8, collect(&reqs))

	p.Goto(4)
	p.First()
	if p.Current() != 0 {
		t.Errorf("expected 0, got %d", p.Current())
	}
	p.Last()
	if p.Current() != 7 {
		t.Errorf("expected 7, got %d", p.Current())
	}
}

func TestAdvanceRespectsFPSCap(t *testing.T) {
	var reqs []int
	p := New(100, collect(&reqs))
	p.Goto(0)
	p.SetPlaying(true)
	p.SetFPSCap(10) // 100ms interval

	t0 := time.Now()
	if !p.Advance(t0) {
		t.Fatal("first advance should step")
	}
	if p.Advance(t0.Add(50 * time.Millisecond)) {
		t.Error("advance before the interval elapsed should not step")
	}
	if !p.Advance(t0.Add(150 * time.Millisecond)) {
		t.Error("advance after the interval should step")
	}
	if p.Current() != 2 {
		t.Errorf("expected frame 2, got %d", p.Current())
	}
}

func TestAdvanceUnlimited(t *testing.T) {
	var reqs []int
	p := New(10, collect(&reqs))
	p.SetPlaying(true)

	now := time.Now()
	for i := 0; i < 3; i++ {
		if !p.Advance(now) {
			t.Fatal("uncapped advance should always step")
		}
	}
}

func TestAdvancePaused(t *testing.T) {
	var reqs []int
	p := New(10, collect(&reqs))

	if p.Advance(time.Now()) {
		t.Error("paused player should not step")
	}
	if len(reqs) != 0 {
		t.Errorf("paused player issued requests: %v", reqs)
	}
}

func TestEmptyPlayer(t *testing.T) {
	var reqs []int
	p := New(0, collect(&reqs))

	p.Goto(0)
	p.Next()
	p.Prev()
	p.SetPlaying(true)
	p.Advance(time.Now())

	if len(reqs) != 0 {
		t.Errorf("empty player issued requests: %v", reqs)
	}
}
