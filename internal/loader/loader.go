// Package loader moves scene frame updates off the render thread.
//
// Loading a frame can involve real work (materializing positions,
// deriving speeds), so the GUI must not do it inline. The Loader runs a
// single worker goroutine with a request slot of depth one: a new
// request overwrites a pending one, so a user scrubbing through frames
// only pays for the frames the worker actually reaches, and the scene
// never ends on an index older than the newest request.
package loader

import (
	"log"
	"sync"
)

// Scene is the mutable target of frame loads.
type Scene interface {
	SetFrame(i int) error
}

// Loader coalesces frame requests onto one worker goroutine. The worker
// sleeps while nothing is pending; there is no polling at rest.
type Loader struct {
	scene      Scene
	onComplete func(frame int)

	mu      sync.Mutex
	cond    *sync.Cond
	pending int
	hasWork bool
	closed  bool

	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
}

// New creates a Loader. onComplete, if non-nil, is invoked on the worker
// goroutine after each applied frame, carrying the applied index. The
// worker does not run until Start.
func New(scene Scene, onComplete func(frame int)) *Loader {
	l := &Loader{
		scene:      scene,
		onComplete: onComplete,
		done:       make(chan struct{}),
	}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// Start launches the worker goroutine. Safe to call once; later calls
// are no-ops.
func (l *Loader) Start() {
	l.startOnce.Do(func() {
		go l.run()
	})
}

// Request asks for frame i to become the displayed frame. Callable from
// any goroutine at any time; a request issued before the previous one is
// serviced overwrites it. Requests after Close are dropped.
func (l *Loader) Request(i int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.pending = i
	l.hasWork = true
	l.cond.Signal()
}

// Close stops the worker and waits for it to exit. Pending requests are
// dropped. Idempotent.
func (l *Loader) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.cond.Signal()
		l.mu.Unlock()

		// If the worker never started, consume startOnce so a late
		// Start cannot launch it, and unblock the join below.
		l.startOnce.Do(func() { close(l.done) })
		<-l.done
	})
}

func (l *Loader) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for !l.hasWork && !l.closed {
			l.cond.Wait()
		}
		if l.closed {
			l.mu.Unlock()
			return
		}
		i := l.pending
		l.hasWork = false
		l.mu.Unlock()

		if err := l.scene.SetFrame(i); err != nil {
			log.Printf("loader: frame %d: %v", i, err)
			continue
		}
		if l.onComplete != nil {
			l.onComplete(i)
		}
	}
}
