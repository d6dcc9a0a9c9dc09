// Package core is a minimal thread-safe vertex/edge store used by
// gridgraph.Export to render a searched grid as a generic, inspectable
// graph: one vertex per walkable cell, one edge per adjacency.
//
// It is deliberately narrow — no removal, cloning, or directed/loop
// policy knobs — because the only producer is Export and the only
// consumers are whatever external tooling reads the result back out.
package core
