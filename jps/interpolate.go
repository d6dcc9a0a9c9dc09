package jps

import "github.com/katalvlaran/jps/grid"

// interpolate reconstructs the dense, cell-by-cell path from start to
// goal by walking the cameFrom chain of jump points and filling in the
// straight-line cells between consecutive ones (spec.md §4.8). The
// result is ordered goal-first with start excluded.
func (w *Workspace) interpolate(start, goal int) []int {
	g := w.grid
	path := make([]int, 0, 8)

	target := goal
	cur := goal
	for {
		cur = oneStepToward(g, cur, target)
		path = append(path, cur)
		if cur == target {
			target = w.cameFrom[target]
		}
		if cur == start {
			break
		}
	}

	// Drop the trailing start element; start == goal degenerates to an
	// empty path, since the only element emitted is start itself.
	if len(path) > 0 {
		path = path[:len(path)-1]
	}

	return path
}

// oneStepToward adjusts cur by +1/0/-1 on each axis independently,
// moving toward target, yielding one of cur's eight neighbours (or
// cur itself only when cur == target). Consecutive jump points are
// always connected by a single straight or diagonal ray, which is what
// makes this correct: every intermediate cell lies exactly on that ray.
func oneStepToward(g *grid.Grid, cur, target int) int {
	c := g.Coordinate(cur)
	t := g.Coordinate(target)

	if c.X < t.X {
		c.X++
	} else if c.X > t.X {
		c.X--
	}
	if c.Y < t.Y {
		c.Y++
	} else if c.Y > t.Y {
		c.Y--
	}

	return g.Index(c)
}
