package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inventory-sim/inventory-sim/state"
)

var (
	stateDir   string   // Directory holding graph.json and products.json
	routeColor string   // Display color for an added product route
	routeSteps []string // Ordered station ids for an added product route
)

// routesCmd groups the product-route CRUD subcommands
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Manage the product routes of the modelled production graph",
}

var routesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the configured product routes",
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		products := store.LoadProducts()
		if len(products) == 0 {
			fmt.Println("no product routes configured")
			return
		}
		for _, p := range products {
			fmt.Printf("%s (%s): %v\n", p.Label, p.Color, p.Route)
		}
	},
}

var routesAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add or overwrite a product route",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		if err := store.AddProductRoute(args[0], routeSteps, routeColor); err != nil {
			logrus.Fatalf("unable to add product route: %v", err)
		}
		fmt.Printf("route %q saved\n", args[0])
	},
}

var routesRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a product route by label",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		if err := store.RemoveProductRoute(args[0]); err != nil {
			logrus.Fatalf("unable to remove product route: %v", err)
		}
		fmt.Printf("route %q removed\n", args[0])
	},
}

var routesResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all configured product routes",
	Run: func(cmd *cobra.Command, args []string) {
		store := state.NewStore(stateDir)
		if err := store.ResetProductRoutes(); err != nil {
			logrus.Fatalf("unable to reset product routes: %v", err)
		}
		fmt.Println("product routes cleared")
	},
}

func init() {
	routesCmd.PersistentFlags().StringVar(&stateDir, "state-dir", "state", "Directory holding graph.json and products.json")
	routesAddCmd.Flags().StringSliceVar(&routeSteps, "route", nil, "Comma-separated ordered station ids")
	routesAddCmd.Flags().StringVar(&routeColor, "color", "red", "Display color for the route")

	routesCmd.AddCommand(routesListCmd, routesAddCmd, routesRemoveCmd, routesResetCmd)
	rootCmd.AddCommand(routesCmd)
}
