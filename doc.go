// Package brickstack settles falling bricks and analyzes the resulting
// support structure: which bricks rest on which, which can be removed
// without anything else moving, and how far a chain reaction spreads
// when a load-bearing brick disappears.
//
// 🚀 What is brickstack?
//
//	A small, deterministic library plus CLI built around four stages:
//		• Parse: "x1,y1,z1~x2,y2,z2 <- label" lines into bricks (brickio/)
//		• Settle: drop every brick straight down in height order (settle/)
//		• Analyze: support graph, removable set, topological order (support/)
//		• Cascade: how many bricks fall when one is removed (support/)
//
// ✨ Why brickstack?
//
//   - One pass: settling and the removable set come from a single sweep
//   - Integer handles: bricks are indices, graphs are plain adjacency slices
//   - Typed errors: malformed input and overlapping bricks are reported, not panicked
//   - Hooks: OnSettle and OnFall observe every step for custom logic
//
// Packages:
//
//	geom/           points, bricks, footprints, ordering
//	surface/        height map: top height and owner per (x, y) column
//	settle/         the settling sweep and its Result
//	support/        support Graph, TopologicalOrder, Cascade, CascadeCounts
//	brickio/        line format reader and writer
//	config/         YAML configuration and slog logger setup
//	cmd/brickstack/ cobra CLI: removable, settle, cascade, graph
//
// Quick ASCII example (schematic, z ↑):
//
//	    G        G rests on F
//	   FFF       F rests on D and E
//	  D   E      D and E each rest on both B and C
//	  BBB CCC    B and C rest on A
//	   AAA       A rests on the ground
//
//	go install github.com/katalvlaran/brickstack/cmd/brickstack@latest
package brickstack
