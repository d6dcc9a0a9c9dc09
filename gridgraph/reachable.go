// Reachable adapts the multi-source flood-fill shape of
// ConnectedComponents onto a jps grid.Grid, answering a cheap
// walkability pre-check without running the jump-point search.
package gridgraph

import "github.com/katalvlaran/jps/grid"

// Reachable reports whether goal is reachable from start by any chain
// of walkable cells under the given connectivity. It is meant as an
// O(W×H) short-circuit in front of a jps.Workspace.Find call: a caller
// that only cares "is there any path at all" (e.g. to decide whether
// to bother computing one) can use this instead of discarding a full
// jps.Result.
//
// Returns false, without error, for out-of-bounds or unwalkable start
// or goal. jps.Workspace.Find differs on the first case: it returns
// ErrInvalidQuery for out-of-bounds indices and Found == false only for
// unwalkable ones.
// Complexity: O(W×H) time, O(W×H) memory.
func Reachable(g *grid.Grid, start, goal grid.Coord, conn Connectivity) bool {
	if g == nil || !g.InBounds(start) || !g.InBounds(goal) {
		return false
	}
	if !g.Walkable(start) || !g.Walkable(goal) {
		return false
	}
	if start == goal {
		return true
	}

	offsets := conn4Offsets
	if conn == Conn8 {
		offsets = conn8Offsets
	}

	visited := make([]bool, g.Len())
	startIdx := g.Index(start)
	goalIdx := g.Index(goal)
	visited[startIdx] = true
	queue := []int{startIdx}

	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		if idx == goalIdx {
			return true
		}
		c := g.Coordinate(idx)
		for _, d := range offsets {
			nc := grid.Coord{X: c.X + d[0], Y: c.Y + d[1]}
			if !g.Walkable(nc) {
				continue
			}
			nIdx := g.Index(nc)
			if !visited[nIdx] {
				visited[nIdx] = true
				queue = append(queue, nIdx)
			}
		}
	}

	return false
}

var conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var conn8Offsets = [][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
