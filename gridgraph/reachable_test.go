package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/jps/grid"
	"github.com/katalvlaran/jps/gridgraph"
	"github.com/stretchr/testify/require"
)

func openRows(w, h int) [][]bool {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
		for x := range rows[y] {
			rows[y][x] = true
		}
	}

	return rows
}

func TestReachable_OpenGrid(t *testing.T) {
	g, err := grid.FromRows(openRows(5, 5))
	require.NoError(t, err)

	require.True(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, gridgraph.Conn8))
}

func TestReachable_WallSplitsGrid(t *testing.T) {
	rows := openRows(5, 5)
	for y := 0; y < 5; y++ {
		rows[y][2] = false
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	require.False(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, gridgraph.Conn4))
	require.False(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, gridgraph.Conn8))
}

func TestReachable_DiagonalGapConn4VsConn8(t *testing.T) {
	rows := [][]bool{
		{true, false},
		{false, true},
	}
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	require.False(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 1}, gridgraph.Conn4))
	require.True(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 1}, gridgraph.Conn8))
}

func TestReachable_UnwalkableEndpointIsFalse(t *testing.T) {
	rows := openRows(3, 3)
	rows[2][2] = false
	g, err := grid.FromRows(rows)
	require.NoError(t, err)

	require.False(t, gridgraph.Reachable(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2}, gridgraph.Conn8))
}

func TestReachable_SameCellIsTrivially(t *testing.T) {
	g, err := grid.FromRows(openRows(3, 3))
	require.NoError(t, err)

	require.True(t, gridgraph.Reachable(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 1, Y: 1}, gridgraph.Conn4))
}
