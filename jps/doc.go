// Package jps implements Jump Point Search: a symmetry-breaking
// optimization of A* over uniform-cost 2D grids with 8-directional
// movement, where orthogonal steps cost 1 and diagonal steps cost √2.
//
// What:
//
//   - Workspace.Find runs the A* outer loop, using the jump procedure
//     to generate successors instead of expanding all eight
//     neighbours of every node, so far fewer open-set nodes are
//     expanded than plain A* on the same grid.
//   - A Workspace owns its per-query scratch (gScore, cameFrom,
//     closed, the indexed open queue) and can be reused across
//     repeated Find calls against grids of the same size, amortising
//     the one-time allocation cost.
//
// Why:
//
//   - Harabor & Botea's Jump Point Search prunes the "symmetric"
//     paths that plain A* wastes time re-discovering on a uniform
//     grid: if two orthogonal moves reach the same cell in either
//     order, only one needs to be explored.
//
// Complexity:
//
//   - Time: identical asymptotic worst case to A*, O(b^d), but with a
//     much smaller practical branching factor and open-set size.
//   - Space: O(W×H) for the scratch arrays, reused across queries.
//
// Errors:
//
//   - ErrInvalidQuery: start or goal index is outside the grid.
//
// A "no path" result (Result.Found == false) is not an error — it is
// the in-contract outcome for an unreachable goal, an unwalkable
// start/goal, or open-set exhaustion. See spec-equivalent semantics
// in the oracle package, used only by this module's own tests as a
// reference implementation.
package jps
