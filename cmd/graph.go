package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inventory-sim/inventory-sim/state"
)

var (
	nodeX float64 // Layout X coordinate for an added or moved station
	nodeY float64 // Layout Y coordinate for an added or moved station
)

// graphCmd groups the production-graph mutation subcommands
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage the stations and edges of the modelled production graph",
}

// mutateGraph loads the graph, applies fn, and atomically saves it back.
func mutateGraph(fn func(*state.Graph)) {
	store := state.NewStore(stateDir)
	graph := store.LoadGraph()
	fn(graph)
	if err := store.SaveGraph(graph); err != nil {
		logrus.Fatalf("unable to save graph: %v", err)
	}
}

var graphAddNodeCmd = &cobra.Command{
	Use:   "add-node <label>",
	Short: "Add a station, or update its position if the label exists",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mutateGraph(func(g *state.Graph) {
			g.AddNode(args[0], nodeX, nodeY)
		})
		fmt.Printf("station %q saved at (%v, %v)\n", args[0], nodeX, nodeY)
	},
}

var graphRemoveNodeCmd = &cobra.Command{
	Use:   "remove-node <label>",
	Short: "Remove a station and every edge incident to it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mutateGraph(func(g *state.Graph) {
			g.RemoveNode(args[0])
		})
		fmt.Printf("station %q removed\n", args[0])
	},
}

var graphMoveNodeCmd = &cobra.Command{
	Use:   "move-node <label>",
	Short: "Move a station to a new layout position, keeping its edges",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mutateGraph(func(g *state.Graph) {
			g.MoveNode(args[0], nodeX, nodeY)
		})
		fmt.Printf("station %q moved to (%v, %v)\n", args[0], nodeX, nodeY)
	},
}

var graphAddEdgeCmd = &cobra.Command{
	Use:   "add-edge <source> <target>",
	Short: "Add a directed edge between two existing stations",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		graph := store.LoadGraph()
		if err := graph.AddEdge(args[0], args[1]); err != nil {
			logrus.Fatalf("unable to add edge: %v", err)
		}
		if err := store.SaveGraph(graph); err != nil {
			logrus.Fatalf("unable to save graph: %v", err)
		}
		fmt.Printf("edge %s -> %s saved\n", args[0], args[1])
	},
}

var graphRemoveEdgeCmd = &cobra.Command{
	Use:   "remove-edge <source> <target>",
	Short: "Remove a directed edge",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mutateGraph(func(g *state.Graph) {
			g.RemoveEdge(args[0], args[1])
		})
		fmt.Printf("edge %s -> %s removed\n", args[0], args[1])
	},
}

var graphResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the graph to an empty one",
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		if err := store.ResetGraph(); err != nil {
			logrus.Fatalf("unable to reset graph: %v", err)
		}
		fmt.Println("graph cleared")
	},
}

func init() {
	graphCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "state", "Directory holding graph.json and products.json")
	graphAddNodeCmd.Flags().Float64Var(&nodeX, "x", 0, "Layout X coordinate")
	graphAddNodeCmd.Flags().Float64Var(&nodeY, "y", 0, "Layout Y coordinate")
	graphMoveNodeCmd.Flags().Float64Var(&nodeX, "x", 0, "New layout X coordinate")
	graphMoveNodeCmd.Flags().Float64Var(&nodeY, "y", 0, "New layout Y coordinate")

	graphCmd.AddCommand(graphAddNodeCmd, graphRemoveNodeCmd, graphMoveNodeCmd, graphAddEdgeCmd, graphRemoveEdgeCmd, graphResetCmd)
	rootCmd.AddCommand(graphCmd)
}
