package oracle

import (
	"github.com/katalvlaran/jps/grid"
	"github.com/katalvlaran/jps/jps"
	"github.com/katalvlaran/jps/pqueue"
)

// NaiveAStar computes a shortest path from start to goal by expanding
// every walkable 8-directional neighbour of each popped node — no
// neighbour pruning, no jump procedure. It is the unoptimized sibling
// the original source ships as astar_unopt_compute, kept here purely
// as a test oracle: spec.md §8 Testable Property 6 requires jps.Find
// to match this implementation's path cost on every input.
func NaiveAStar(g *grid.Grid, start, goal int, heuristic, precise jps.DistanceFunc) (path []int, cost float64, found bool) {
	if g == nil || !g.InBoundsIndex(start) || !g.InBoundsIndex(goal) {
		return nil, 0, false
	}
	if !g.WalkableIndex(start) || !g.WalkableIndex(goal) {
		return nil, 0, false
	}

	n := g.Len()
	gScore := make([]float64, n)
	cameFrom := make([]int, n)
	closed := make([]bool, n)

	goalCoord := g.Coordinate(goal)
	open := pqueue.New(n)
	gScore[start] = 0
	cameFrom[start] = -1
	_ = open.Insert(start, heuristic(g.Coordinate(start), goalCoord))

	for {
		current, _, ok := open.FindMin()
		if !ok {
			return nil, 0, false
		}
		if current == goal {
			return naiveInterpolate(cameFrom, start, goal), gScore[goal], true
		}
		open.DeleteMin()
		closed[current] = true

		currentCoord := g.Coordinate(current)
		for dir := grid.North; dir <= grid.NorthWest; dir++ {
			neighbourCoord := grid.Step(currentCoord, dir)
			if !g.Walkable(neighbourCoord) {
				continue
			}
			neighbour := g.Index(neighbourCoord)
			if closed[neighbour] {
				continue
			}

			tentativeG := gScore[current] + precise(currentCoord, neighbourCoord)
			if !open.Exists(neighbour) {
				cameFrom[neighbour] = current
				gScore[neighbour] = tentativeG
				_ = open.Insert(neighbour, tentativeG+heuristic(neighbourCoord, goalCoord))
			} else if tentativeG < gScore[neighbour] {
				cameFrom[neighbour] = current
				gScore[neighbour] = tentativeG
				_ = open.ChangePriority(neighbour, tentativeG+heuristic(neighbourCoord, goalCoord))
			}
		}
	}
}

// naiveInterpolate walks cameFrom back from goal to start. Unlike
// jps.interpolate, every cameFrom link here is already a single-cell
// step, so no straight-line filling is required.
func naiveInterpolate(cameFrom []int, start, goal int) []int {
	path := make([]int, 0, 8)
	for at := goal; at != start; at = cameFrom[at] {
		path = append(path, at)
	}

	return path
}
