// Package jps (module github.com/katalvlaran/jps) is a Jump Point
// Search pathfinder for uniform-cost 2D grids.
//
// 🚀 What is jps?
//
//	A small, dependency-light toolkit that brings together:
//
//	  • grid/pqueue: walkability grid algebra and an indexed priority queue
//	  • jps: the jump-point search engine and its A* outer loop
//	  • gridgraph/core: reachability pre-checks and graph export for debugging
//
// ✨ Why choose jps?
//
//   - Fast         — jump-point pruning skips whole runs of uninteresting nodes
//   - Reusable     — jps.Workspace amortizes allocation across repeated queries
//   - Predictable  — one query per call, single-threaded, no hidden goroutines
//   - Pure Go      — no cgo; non-test code uses only the standard library (testify is test-only)
//
// Under the hood, everything is organized under six subpackages:
//
//	grid/      — Grid, Coord, Direction and their O(1) algebra
//	pqueue/    — the indexed priority queue jps.Workspace.Find runs on
//	jps/       — Workspace.Find, Query, Result and the jump procedure
//	gridgraph/ — Reachable pre-check and *core.Graph export for debugging
//	core/      — thread-safe Graph/Vertex/Edge primitives
//	oracle/    — NaiveAStar and Dijkstra8, test-only reference implementations
//
// Quick example:
//
//	import enginejps "github.com/katalvlaran/jps/jps"
//
//	ws := enginejps.NewWorkspace()
//	res, err := ws.Find(enginejps.Query{Grid: g, Start: start, Goal: goal})
//
// See SPEC_FULL.md and DESIGN.md for the full design and grounding notes.
//
//	go get github.com/katalvlaran/jps
package jps
