package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/jps/core"
	"github.com/katalvlaran/jps/grid"
	"github.com/katalvlaran/jps/jps"
)

// Export projects a jps.Result onto a *core.Graph for inspection with
// any core-based tool (e.g. a generic graph visualizer): one vertex per
// walkable cell of g, one weighted directed edge each way per
// 8-connected walkable pair
// (weight 1 orthogonal, 2 diagonal — integer-only, since core.Edge
// carries an int64 weight and this graph is for debugging, not for
// re-running a shortest-path algorithm), and every cell on res.Path
// tagged with its position in the path via Vertex.Metadata.
//
// Adapted from GridGraph.ToCoreGraph: same vertex-ID scheme ("x,y"),
// generalized from a dense [][]int grid to a boolean jps grid.Grid and
// extended with path annotation.
// Complexity: O(W×H×8 + len(res.Path)) time, O(W×H) memory.
func Export(g *grid.Grid, res jps.Result) *core.Graph {
	cg := core.NewGraph(core.WithWeighted())
	if g == nil {
		return cg
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.Walkable(c) {
				continue
			}
			_ = cg.AddVertex(vertexID(c))
		}
	}

	verts := cg.InternalVertices()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.Walkable(c) {
				continue
			}
			v := verts[vertexID(c)]
			v.Metadata = map[string]interface{}{"x": x, "y": y}
		}
	}

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := grid.Coord{X: x, Y: y}
			if !g.Walkable(c) {
				continue
			}
			for _, dir := range []grid.Direction{
				grid.North, grid.NorthEast, grid.East, grid.SouthEast,
				grid.South, grid.SouthWest, grid.West, grid.NorthWest,
			} {
				nc := grid.Step(c, dir)
				if !g.Walkable(nc) {
					continue
				}
				weight := int64(1)
				if dir.Diagonal() {
					weight = 2
				}
				_, _ = cg.AddEdge(vertexID(c), vertexID(nc), weight)
			}
		}
	}

	for order, idx := range res.Path {
		c := g.Coordinate(idx)
		if v, ok := verts[vertexID(c)]; ok {
			v.Metadata["on_path"] = true
			v.Metadata["path_order"] = order
		}
	}

	return cg
}

func vertexID(c grid.Coord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}
