// Package scene holds the data model the viewport renders.
//
// The central types are:
//
//   - [Vec2]: 2-D vector used for particle positions and camera math
//   - [Frame]: one immutable snapshot of particle positions
//   - [Trajectory]: source of frames, usually an in-memory recording
//   - [Scene]: the currently displayed frame, published atomically
//
// # Thread Safety
//
// [Scene.SetFrame] may be called from a worker goroutine while the render
// thread calls [Scene.Snapshot]. A frame is materialized completely before
// it is published with a single atomic pointer store, so a reader never
// observes a partially written frame.
package scene
