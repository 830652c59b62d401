package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/centraliser/core"
	"github.com/katalvlaran/centraliser/dfs"
)

// functional builds the graph i → images[k][i] for every image list.
func functional(n int, images ...[]int) *core.Graph {
	g := core.NewFunctionalGraph(n)
	for label, img := range images {
		for i, j := range img {
			_, _ = g.AddEdge(i, j, label)
		}
	}

	return g
}

func TestSCC_NilGraph(t *testing.T) {
	_, err := dfs.StronglyConnectedComponents(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestSCC_Empty(t *testing.T) {
	comps, err := dfs.StronglyConnectedComponents(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestSCC_ChainIsAllSingletons(t *testing.T) {
	comps, err := dfs.StronglyConnectedComponents(functional(4, []int{1, 2, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, comps)
}

func TestSCC_TwoCycle(t *testing.T) {
	comps, err := dfs.StronglyConnectedComponents(functional(4, []int{1, 2, 3, 2}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2, 3}}, comps)
}

func TestSCC_MultipleGenerators(t *testing.T) {
	// 0→1 via the first map, 1→0 via the second: one component.
	comps, err := dfs.StronglyConnectedComponents(functional(3,
		[]int{1, 1, 2},
		[]int{0, 0, 0},
	))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2}}, comps)
}

func TestSCC_LongCycleNoRecursion(t *testing.T) {
	const n = 50000
	img := make([]int, n)
	for i := range img {
		img[i] = (i + 1) % n
	}
	comps, err := dfs.StronglyConnectedComponents(functional(n, img))
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], n)
}

func TestSCC_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.StronglyConnectedComponents(functional(3, []int{1, 2, 0}), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCondense_SourcesAndSinks(t *testing.T) {
	// 0 → {1,2} cycle → 3 (fixed)
	g := functional(4, []int{1, 2, 1, 3}, []int{0, 3, 3, 3})
	c, err := dfs.Condense(g)
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, c.Components)
	assert.Equal(t, 1, c.ComponentOf[2])
	assert.Equal(t, []int{0}, c.Sources())
	assert.Equal(t, []int{2}, c.Sinks())
	assert.True(t, c.DAG.HasEdge(0, 1))
	assert.True(t, c.DAG.HasEdge(1, 2))
	assert.False(t, c.DAG.HasEdge(1, 1), "no loops in the condensation")
}
