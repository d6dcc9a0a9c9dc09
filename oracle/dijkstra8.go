package oracle

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/jps/grid"
)

// nodeItem and nodePQ reproduce the teacher module's dijkstra package
// lazy-decrease-key container/heap pattern verbatim in shape — push a
// new entry on every relaxation rather than mutating one in place, and
// ignore stale entries when popped (checked against visited) — but
// over grid linear indices instead of *core.Graph string vertex IDs,
// since Dijkstra8 never builds a core.Graph for its hot path.
type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Dijkstra8 computes the exact shortest path from start to goal over
// the grid's 8-directional adjacency (orthogonal cost 1, diagonal
// cost √2), used as the "reference 8-directional Dijkstra with
// diagonal cost √2" spec.md §8 Testable Property 1 calls for.
func Dijkstra8(g *grid.Grid, start, goal int) (path []int, cost float64, found bool) {
	if g == nil || !g.InBoundsIndex(start) || !g.InBoundsIndex(goal) {
		return nil, 0, false
	}
	if !g.WalkableIndex(start) || !g.WalkableIndex(goal) {
		return nil, 0, false
	}

	n := g.Len()
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[start] = 0

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == goal {
			break
		}

		uCoord := g.Coordinate(u)
		for dir := grid.North; dir <= grid.NorthWest; dir++ {
			vCoord := grid.Step(uCoord, dir)
			if !g.Walkable(vCoord) {
				continue
			}
			v := g.Index(vCoord)
			if visited[v] {
				continue
			}

			w := 1.0
			if dir.Diagonal() {
				w = math.Sqrt2
			}
			newDist := d + w
			if newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(&pq, &nodeItem{id: v, dist: newDist})
			}
		}
	}

	if !visited[goal] {
		return nil, 0, false
	}

	path = make([]int, 0, 8)
	for at := goal; at != start; at = prev[at] {
		path = append(path, at)
	}

	return path, dist[goal], true
}
