// Package core_test verifies core.Graph method-level contracts:
// constraint enforcement, deterministic ordering and labelled adjacency.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(-1), core.ErrNegativeVertex)

	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3)) // idempotent
	assert.True(t, g.HasVertex(3))
	assert.False(t, g.HasVertex(0))
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(1, 1, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(0, 1, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge(-2, 1, 0)
	assert.ErrorIs(t, err, core.ErrNegativeVertex)
}

func TestGraph_MultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	for label := 0; label < 3; label++ {
		_, err := g.AddEdge(0, 1, label)
		require.NoError(t, err)
	}
	_, err := g.AddEdge(1, 1, 0)
	require.NoError(t, err)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, nbs, 3, "parallel edges are listed individually")

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids, "NeighborIDs is deduplicated")
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_NeighborsUnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors(7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(7)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_DeterministicOrder(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{5, 2}, {0, 9}, {3, 1}, {0, 4}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 9}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].ID, edges[i].ID)
	}

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, ids)
}

func TestNewFunctionalGraph(t *testing.T) {
	g := core.NewFunctionalGraph(4)
	assert.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	assert.Equal(t, 0, g.EdgeCount())

	_, err := g.AddEdge(2, 2, 0)
	assert.NoError(t, err, "functional graphs allow fixed points")
	_, err = g.AddEdge(2, 2, 1)
	assert.NoError(t, err, "and parallel edges from distinct generators")
}

func TestGraph_OrderedAdjacencies(t *testing.T) {
	g := core.NewFunctionalGraph(2)
	// insert out of label order on purpose
	_, _ = g.AddEdge(0, 0, 1)
	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 0, 0)
	_, _ = g.AddEdge(1, 0, 1)

	assert.Equal(t, [][]int{{1, 0}, {0, 0}}, g.OrderedAdjacencies())
}
