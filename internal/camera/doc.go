// Package camera provides the 2-D viewport camera and the pointer-driven
// controller that mutates it.
//
//   - [Camera]: position, height (zoom), aspect and viewport resolution
//   - [Controller]: drag panning, inertial pan decay, wheel zoom
//
// The controller is a three-state machine (Idle, Panning, Animating).
// Every method takes an explicit timestamp so the decay animation is
// deterministic under test; the host feeds it wall-clock time.
//
// The controller is single-threaded: it must only be driven from the
// UI thread that owns the event stream.
package camera
