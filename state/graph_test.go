package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddNodeUpsertsPosition(t *testing.T) {
	g := NewGraph()
	g.AddNode("mill", 1, 2)
	g.AddNode("mill", 5, 6)

	require.Len(t, g.Nodes, 1)
	assert.Equal(t, 5.0, g.Nodes[0].X)
	assert.Equal(t, 6.0, g.Nodes[0].Y)
	assert.True(t, g.HasNode("mill"))
}

func TestGraph_AddEdgeRequiresBothEnds(t *testing.T) {
	g := NewGraph()
	g.AddNode("mill", 0, 0)

	err := g.AddEdge("mill", "press")
	require.Error(t, err)

	var missing *MissingNodesError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"press"}, missing.Missing)

	err = g.AddEdge("kiln", "press")
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"kiln", "press"}, missing.Missing)
}

func TestGraph_AddEdgeIsIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", 0, 0)
	g.AddNode("b", 1, 0)

	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))
	assert.Len(t, g.Links, 1)
	assert.True(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"), "edges are directed")
}

func TestGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", 0, 0)
	g.AddNode("b", 1, 0)
	g.AddNode("c", 2, 0)
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("a", "c"))

	g.RemoveNode("b")

	assert.False(t, g.HasNode("b"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "c"))
	assert.True(t, g.HasEdge("a", "c"))
}

func TestGraph_MoveNode(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", 0, 0)
	g.MoveNode("a", 3, 4)

	assert.Equal(t, 3.0, g.Nodes[0].X)
	assert.Equal(t, 4.0, g.Nodes[0].Y)

	// Unknown node: no-op
	g.MoveNode("ghost", 9, 9)
	assert.Len(t, g.Nodes, 1)
}

func TestGraph_RemoveEdgeUnknownIsNoop(t *testing.T) {
	g := NewGraph()
	g.AddNode("a", 0, 0)
	g.AddNode("b", 0, 0)
	require.NoError(t, g.AddEdge("a", "b"))

	g.RemoveEdge("b", "a")
	assert.Len(t, g.Links, 1)

	g.RemoveEdge("a", "b")
	assert.Empty(t, g.Links)
}
