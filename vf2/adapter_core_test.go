package vf2_test

import (
	"testing"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/vf2"
	"github.com/stretchr/testify/require"
)

func directedTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "a", 0)
	require.NoError(t, err)
	return g
}

func TestCoreAdapter_DenseIndexAndAdjacency(t *testing.T) {
	g := directedTriangle(t)
	a := vf2.NewCoreAdapter(g)

	require.Equal(t, 3, a.NodeCount())
	require.True(t, a.Directed())

	// Vertices() sorts lexicographically: a=0, b=1, c=2.
	require.Equal(t, "a", a.VertexID(0))
	require.Equal(t, "b", a.VertexID(1))
	require.Equal(t, "c", a.VertexID(2))

	require.True(t, a.HasEdge(0, 1))
	require.True(t, a.HasEdge(1, 2))
	require.True(t, a.HasEdge(2, 0))
	require.False(t, a.HasEdge(1, 0))

	require.ElementsMatch(t, []int{1}, a.OutNeighbors(0))
	require.ElementsMatch(t, []int{2}, a.OutNeighbors(1))
	require.ElementsMatch(t, []int{1}, a.InNeighbors(2))
}

func TestCoreAdapter_UndirectedMirrorsBothWays(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "y", 0)
	require.NoError(t, err)

	a := vf2.NewCoreAdapter(g)
	require.False(t, a.Directed())
	require.True(t, a.HasEdge(0, 1))
	require.True(t, a.HasEdge(1, 0))
	require.Equal(t, a.OutNeighbors(0), a.InNeighbors(0))
}

func TestCoreAdapter_NodeAndEdgeLabels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("x"))
	require.NoError(t, g.AddVertex("y"))
	require.NoError(t, g.SetNodeLabel("x", "red"))
	_, err := g.AddEdge("x", "y", 0, core.WithEdgeLabel("bond"))
	require.NoError(t, err)

	a := vf2.NewCoreAdapter(g)
	require.Equal(t, "red", a.NodeLabel(0))
	require.Nil(t, a.NodeLabel(1))
	require.Equal(t, "bond", a.EdgeLabel(0, 1))
	require.Equal(t, "bond", a.EdgeLabel(1, 0))
}

func TestCoreAdapter_MultiEdgeIsExistenceNotCount(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err := g.AddEdge("x", "y", 0, core.WithEdgeLabel("first"))
	require.NoError(t, err)
	_, err = g.AddEdge("x", "y", 0, core.WithEdgeLabel("second"))
	require.NoError(t, err)

	a := vf2.NewCoreAdapter(g)
	require.True(t, a.HasEdge(0, 1))
	require.Len(t, a.OutNeighbors(0), 1, "parallel edges collapse to one adjacency entry")
	require.Equal(t, "first", a.EdgeLabel(0, 1), "first-writer-wins on parallel-edge label")
}
