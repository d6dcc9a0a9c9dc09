// Package oracle provides two reference pathfinding implementations
// used only by this module's own tests to validate jps.Workspace.Find:
//
//   - NaiveAStar: the same A* outer loop as jps, but expanding all
//     eight walkable neighbours of a node instead of calling into the
//     jump procedure. This is the Go equivalent of the original
//     source's astar_unopt_compute, which the source's own comments
//     describe as shipped "for validation" alongside the optimized
//     implementation — spec.md §9 Design Notes: "treat the plain
//     variant as a test oracle, not as production code."
//   - Dijkstra8: a grid-native Dijkstra, adapted from the teacher
//     module's dijkstra package (kept: the lazy-decrease-key
//     container/heap pattern; changed: it walks linear grid indices
//     with 8-directional edges instead of a *core.Graph's string
//     vertex IDs), used as the "reference 8-directional Dijkstra with
//     diagonal cost √2" spec.md §8 Testable Property 1 calls for.
//
// Neither function is exported from jps, and neither is meant to be
// fast — NaiveAStar and Dijkstra8 both allocate Θ(W×H) scratch on
// every call and prune no neighbours; both stop once the goal is
// settled.
package oracle
