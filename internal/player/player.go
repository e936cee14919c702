// Package player tracks the playback cursor of a trajectory: which frame
// is wanted, whether playback is running, and how fast. It owns no data
// and does no I/O; frame requests are forwarded to a sink, normally the
// loader's Request.
package player

import "time"

// Player is a playback cursor over numFrames frames. Not safe for
// concurrent use; it lives on the UI thread.
type Player struct {
	numFrames int
	current   int
	playing   bool
	fpsCap    int
	lastStep  time.Time
	sink      func(frame int)
}

// New creates a player over numFrames frames forwarding requests to
// sink. The cursor starts at -1 so the first Goto(0) is not deduped.
func New(numFrames int, sink func(frame int)) *Player {
	return &Player{numFrames: numFrames, current: -1, sink: sink}
}

func (p *Player) Current() int { return p.current }

func (p *Player) NumFrames() int { return p.numFrames }

// Goto moves the cursor to frame i, clamped into range. A request for
// the frame already current is dropped; slider and key events frequently
// double-fire for the same frame.
func (p *Player) Goto(i int) {
	if p.numFrames == 0 {
		return
	}
	if i < 0 {
		i = 0
	} else if i >= p.numFrames {
		i = p.numFrames - 1
	}
	if i == p.current {
		return
	}
	p.current = i
	if p.sink != nil {
		p.sink(i)
	}
}

// Next advances one frame, wrapping past the end.
func (p *Player) Next() {
	if p.numFrames == 0 {
		return
	}
	p.Goto((p.current + 1) % p.numFrames)
}

// Prev steps back one frame, wrapping before the start.
func (p *Player) Prev() {
	if p.numFrames == 0 {
		return
	}
	i := p.current - 1
	if i < 0 {
		i = p.numFrames - 1
	}
	p.Goto(i)
}

func (p *Player) First() { p.Goto(0) }

func (p *Player) Last() { p.Goto(p.numFrames - 1) }

func (p *Player) Playing() bool { return p.playing }

func (p *Player) SetPlaying(playing bool) { p.playing = playing }

func (p *Player) TogglePlaying() { p.playing = !p.playing }

// FPSCap returns the playback rate limit; 0 means unlimited.
func (p *Player) FPSCap() int { return p.fpsCap }

func (p *Player) SetFPSCap(fps int) {
	if fps < 0 {
		fps = 0
	}
	p.fpsCap = fps
}

// Advance steps to the next frame when playing and the FPS interval has
// elapsed. Reports whether it stepped.
func (p *Player) Advance(now time.Time) bool {
	if !p.playing || p.numFrames == 0 {
		return false
	}
	if p.fpsCap > 0 {
		interval := time.Second / time.Duration(p.fpsCap)
		if now.Sub(p.lastStep) < interval {
			return false
		}
	}
	p.lastStep = now
	p.Next()
	return true
}
