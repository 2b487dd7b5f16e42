package graph_test

import (
	"testing"

	"github.com/jwhandley/ttwa/graph"
	"github.com/stretchr/testify/require"
)

func TestFromAdjacencyMatrix_DegreesAndWeights(t *testing.T) {
	m := [][]int64{
		{0, 5, 0},
		{0, 0, 3},
		{2, 0, 1},
	}
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)
	require.Equal(t, 3, g.N())

	require.Equal(t, int64(5), g.OutDegree(0))
	require.Equal(t, int64(3), g.OutDegree(1))
	require.Equal(t, int64(3), g.OutDegree(2)) // 2 + 1

	require.Equal(t, int64(2), g.InDegree(0))
	require.Equal(t, int64(5), g.InDegree(1))
	require.Equal(t, int64(4), g.InDegree(2)) // 3 + 1

	var total int64
	for i := 0; i < 3; i++ {
		total += g.OutDegree(i)
	}
	require.Equal(t, int64(11), total)
	require.Equal(t, int64(11), g.TotalWeight())
}

func TestFromAdjacencyMatrix_NotSquare(t *testing.T) {
	m := [][]int64{
		{0, 1},
		{1, 0, 0},
	}
	_, err := graph.FromAdjacencyMatrix(m)
	require.ErrorIs(t, err, graph.ErrNotSquare)
}

func TestFromAdjacencyMatrix_NegativeWeight(t *testing.T) {
	m := [][]int64{
		{0, -1},
		{1, 0},
	}
	_, err := graph.FromAdjacencyMatrix(m)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestFromAdjacencyMatrix_IsolatedNode(t *testing.T) {
	m := [][]int64{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	}
	_, err := graph.FromAdjacencyMatrix(m)
	require.ErrorIs(t, err, graph.ErrIsolatedNode)
}

func TestFromAdjacencyMatrix_SelfLoop(t *testing.T) {
	m := [][]int64{
		{5},
	}
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)
	require.Equal(t, int64(5), g.InDegree(0))
	require.Equal(t, int64(5), g.OutDegree(0))
	edges := g.OutEdges(0)
	require.Len(t, edges, 1)
	require.Equal(t, graph.Edge{Source: 0, Target: 0, Weight: 5}, edges[0])
}

func TestEdges_DirectionAndOrder(t *testing.T) {
	m := [][]int64{
		{0, 2, 3},
		{0, 0, 0},
		{0, 0, 0},
	}
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)

	out := g.OutEdges(0)
	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].Target)
	require.Equal(t, 2, out[1].Target)

	in1 := g.InEdges(1)
	require.Len(t, in1, 1)
	require.Equal(t, 0, in1[0].Source)
}

func TestNeighbors_ExcludesSelfDedupesBothDirections(t *testing.T) {
	m := [][]int64{
		{1, 4, 0},
		{4, 0, 0},
		{0, 3, 0},
	}
	g, err := graph.FromAdjacencyMatrix(m)
	require.NoError(t, err)

	nbrs := g.Neighbors(0)
	require.ElementsMatch(t, []int{1}, nbrs)
}
