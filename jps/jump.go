package jps

import "github.com/katalvlaran/jps/grid"

// hasForcedNeighbours reports whether cell c, entered from direction
// dir, has a forced neighbour (spec.md §4.4): a side-adjacent cell
// that is walkable while the cell that would normally route around it
// is blocked, making c the unique optimal predecessor for reaching it.
//
// ent(k) is the original C source's ENTERABLE(k) macro, reimplemented as
// a small closure parameterized over (c, dir) instead of global state
// (spec.md §9 Design Notes).
func hasForcedNeighbours(g *grid.Grid, c grid.Coord, dir grid.Direction) bool {
	ent := func(k int) bool {
		return g.Walkable(grid.Step(c, dir.Rotate(k)))
	}
	implies := func(a, b bool) bool { return !a || b }

	if dir.Diagonal() {
		return !implies(ent(-2), ent(-3)) || !implies(ent(2), ent(3))
	}

	return !implies(ent(-1), ent(-2)) || !implies(ent(1), ent(2))
}

// jump runs the recursive jump procedure of spec.md §4.5 from node
// 'from' along direction dir, returning a jump point, the goal, or -1.
//
// The ray-scan along a fixed direction (spec.md §4.5 step 5's
// self-recursion) is iterative here rather than a tail call, per
// spec.md §9's note that recursion depth should not scale with the
// length of the longest ray on the map. The only remaining recursion
// is a diagonal jump's two straight lookaheads, which themselves never
// recurse into a further diagonal — so call depth is bounded by 1
// regardless of map size, matching the "small local stack of size 2"
// the design notes describe.
func (w *Workspace) jump(dir grid.Direction, from int) int {
	if dir.Diagonal() {
		return w.jumpDiagonal(dir, from)
	}

	return w.jumpStraight(dir, from)
}

func (w *Workspace) jumpStraight(dir grid.Direction, from int) int {
	g := w.grid
	cur := from
	for {
		c := grid.Step(g.Coordinate(cur), dir)
		if !g.Walkable(c) {
			return -1
		}
		n := g.Index(c)
		if n == w.goal {
			return n
		}
		if hasForcedNeighbours(g, c, dir) {
			return n
		}
		cur = n
	}
}

func (w *Workspace) jumpDiagonal(dir grid.Direction, from int) int {
	g := w.grid
	cur := from
	for {
		c := grid.Step(g.Coordinate(cur), dir)
		if !g.Walkable(c) {
			return -1
		}
		n := g.Index(c)
		if n == w.goal {
			return n
		}
		if hasForcedNeighbours(g, c, dir) {
			return n
		}
		// A diagonal cell is itself a jump point when either
		// component straight direction reaches one off its own bat
		// (spec.md §4.5 step 4).
		if w.jumpStraight(dir.Rotate(-1), n) >= 0 {
			return n
		}
		if w.jumpStraight(dir.Rotate(1), n) >= 0 {
			return n
		}
		cur = n
	}
}
