package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-sim/inventory-sim/state"
)

// captureStdout runs fn and returns everything it wrote to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestGraphCommands_EndToEnd(t *testing.T) {
	stateDir = t.TempDir()
	defer func() { stateDir = "state" }()
	store := state.NewStore(stateDir)

	nodeX, nodeY = 1, 2
	captureStdout(t, func() {
		graphAddNodeCmd.Run(graphAddNodeCmd, []string{"mill"})
		graphAddNodeCmd.Run(graphAddNodeCmd, []string{"press"})
		graphAddEdgeCmd.Run(graphAddEdgeCmd, []string{"mill", "press"})
	})

	graph := store.LoadGraph()
	require.True(t, graph.HasNode("mill"))
	require.True(t, graph.HasNode("press"))
	assert.True(t, graph.HasEdge("mill", "press"))

	nodeX, nodeY = 5, 6
	captureStdout(t, func() {
		graphMoveNodeCmd.Run(graphMoveNodeCmd, []string{"mill"})
	})
	graph = store.LoadGraph()
	assert.Equal(t, 5.0, graph.Nodes[0].X)
	assert.Equal(t, 6.0, graph.Nodes[0].Y)

	captureStdout(t, func() {
		graphRemoveEdgeCmd.Run(graphRemoveEdgeCmd, []string{"mill", "press"})
	})
	assert.False(t, store.LoadGraph().HasEdge("mill", "press"))

	captureStdout(t, func() {
		graphRemoveNodeCmd.Run(graphRemoveNodeCmd, []string{"press"})
	})
	graph = store.LoadGraph()
	assert.False(t, graph.HasNode("press"))
	assert.True(t, graph.HasNode("mill"))

	out := captureStdout(t, func() {
		graphResetCmd.Run(graphResetCmd, nil)
	})
	assert.Contains(t, out, "graph cleared")
	assert.Empty(t, store.LoadGraph().Nodes)
}

func TestGraphAddNodeCommand_UpsertsPosition(t *testing.T) {
	stateDir = t.TempDir()
	defer func() { stateDir = "state" }()
	store := state.NewStore(stateDir)

	nodeX, nodeY = 0, 0
	captureStdout(t, func() {
		graphAddNodeCmd.Run(graphAddNodeCmd, []string{"kiln"})
	})
	nodeX, nodeY = 9, 4
	captureStdout(t, func() {
		graphAddNodeCmd.Run(graphAddNodeCmd, []string{"kiln"})
	})

	graph := store.LoadGraph()
	require.Len(t, graph.Nodes, 1)
	assert.Equal(t, 9.0, graph.Nodes[0].X)
	assert.Equal(t, 4.0, graph.Nodes[0].Y)
}
