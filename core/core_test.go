package core_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/jps/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_IdempotentAndValidates(t *testing.T) {
	g := core.NewGraph()

	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	require.Equal(t, 1, g.VertexCount())
	require.True(t, g.HasVertex("a"))
	require.False(t, g.HasVertex("missing"))
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestVertices_SortedAscending(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddVertex(id))
	}

	require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

func TestAddEdge_AutoCreatesEndpointsAndWeightPolicy(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	eid, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	require.NotEmpty(t, eid)
	require.True(t, g.HasVertex("a"))
	require.True(t, g.HasVertex("b"))
	require.True(t, g.HasEdge("a", "b"))
	require.False(t, g.HasEdge("b", "a"))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_RejectsWeightOnUnweightedGraph(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("a", "b", 1)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestAddEdge_DistinctIDs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	e1, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)
	e2, err := g.AddEdge("a", "c", 2)
	require.NoError(t, err)
	require.NotEqual(t, e1, e2)
}

func TestInternalVertices_LiveMapReflectsMetadataWrites(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))

	verts := g.InternalVertices()
	verts["a"].Metadata["tag"] = "x"
	require.Equal(t, "x", verts["a"].Metadata["tag"])
}

// TestConcurrentAddEdge exercises AddVertex/AddEdge from many goroutines
// at once; run with -race to catch any lock-ordering regression.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := g.AddEdge("hub", string(rune('a'+i%26)), int64(i))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, g.EdgeCount())
}
