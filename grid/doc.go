// Package grid provides the occupancy-grid value type and coordinate
// algebra shared by jps and gridgraph.
//
// What:
//
//   - Grid wraps an immutable W×H boolean occupancy map addressed by
//     linear index (row-major, i = x + y*W) or by (x, y) coordinate.
//   - Direction is one of eight compass orientations, numbered 0..7
//     clockwise from north; odd directions are diagonal.
//   - Coord/Step/DirectionOf implement the bounds checks and modular
//     direction arithmetic every JPS lookahead depends on.
//
// Why:
//
//   - Keeping grid algebra in its own package lets jps, oracle and
//     gridgraph all address the same cells the same way without
//     depending on each other.
//
// Complexity:
//
//   - Every operation in this package is O(1).
package grid
