package jps

import "github.com/katalvlaran/jps/grid"

// allDirections lists every direction 0..7 in clockwise order, used
// when expanding the start node (no incoming direction to prune against).
var allDirections = [8]grid.Direction{
	grid.North, grid.NorthEast, grid.East, grid.SouthEast,
	grid.South, grid.SouthWest, grid.West, grid.NorthWest,
}

// permittedDirections returns the outgoing directions JPS's natural-
// neighbour pruning allows from a node entered via fromDir (spec.md
// §4.6). Forced-neighbour directions are not listed here: jump already
// returns a jump point whenever a forced neighbour exists, so the next
// expansion from that jump point applies this same filter against its
// own incoming direction.
func permittedDirections(fromDir grid.Direction) []grid.Direction {
	if fromDir == grid.NoDirection {
		out := make([]grid.Direction, 8)
		copy(out, allDirections[:])

		return out
	}
	if fromDir.Diagonal() {
		// Forward cone of five: straight ahead plus both flanks.
		return []grid.Direction{
			fromDir,
			fromDir.Rotate(-1), fromDir.Rotate(1),
			fromDir.Rotate(-2), fromDir.Rotate(2),
		}
	}

	// Forward cone of three.
	return []grid.Direction{fromDir, fromDir.Rotate(-1), fromDir.Rotate(1)}
}
