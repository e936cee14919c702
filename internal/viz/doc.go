// Package viz provides terminal playback of particle trajectories.
//
// The package implements an interactive TUI using the Bubble Tea
// framework:
//
//   - [Model]: trajectory playback with frame stepping and stats
//   - [Canvas]: Braille-based pixel canvas for particle rendering
//   - Theme cycling with built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	←/→   - Step one frame
//	Home/End - First/last frame
//	T     - Cycle color themes
//	Q     - Quit
package viz
