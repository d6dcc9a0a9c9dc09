// Package gridgraph adapts a jps grid.Grid onto a graph view for
// debugging and pre-checks, without running the jump-point search itself.
//
// What:
//
//   - Reachable answers "is there any walkable route at all" between two
//     cells via a plain flood fill, cheaper than a full Find when the
//     caller only needs a yes/no pre-check.
//   - Export projects a jps.Result onto a *core.Graph, so any core-based
//     tool (inspector, visualizer) can render the searched grid and the
//     path found through it.
//
// Why:
//
//   - Reject unreachable queries before paying for a jump-point search.
//   - Inspect a completed search without re-deriving it.
//
// Complexity:
//
//   - Reachable: O(W×H) time, O(W×H) memory.
//   - Export:    O(W×H×8 + len(path)) time, O(W×H) memory.
package gridgraph
