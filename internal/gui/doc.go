// Package gui hosts the raylib viewport: window setup, the input
// adapter feeding the camera controller, the render loop, and shutdown.
//
// The render loop is single-threaded. The only other goroutine is the
// frame loader's worker, which mutates plain scene data and never calls
// into raylib; its completions reach the loop through an atomic redraw
// flag.
//
// InitWindow must run before NewViewer; construction fails with
// [ErrWindowNotReady] otherwise.
package gui
