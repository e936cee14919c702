// Package traj holds recorded particle trajectories and their on-disk
// format.
//
// A trajectory on disk is a directory:
//
//	<name>/meta.json    name, particle count, frame count, dt, generator
//	<name>/frames.csv   one row per frame: index, then x,y per particle
//
// [Load] reads a directory into an in-memory [Trajectory], which
// implements scene.Trajectory. The package also ships deterministic
// generators ([Orbits], [Brownian]) so `trajview gen` can produce demo
// data without a simulation pipeline.
package traj
