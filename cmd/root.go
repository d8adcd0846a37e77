package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var (
	// CLI flags for the simulation scenario
	seed         int64   // Seed for the run's random streams
	horizonDays  int     // Total number of simulated days
	logLevel     string  // Log verbosity level
	demandMean   int     // Average daily demand in units
	demandModel  string  // Demand model ("bernoulli" or "poisson")
	leadTimeMin  int     // Minimum replenishment lead time in days
	leadTimeMax  int     // Maximum replenishment lead time in days
	holdingCost  float64 // Holding cost per unit per day
	orderingCost float64 // Fixed cost per placed order
	stockoutCost float64 // Penalty per unit of unmet demand
	scenarioFile string  // Optional YAML scenario file overriding the flags above

	// CLI flags for the (s, S) policy under evaluation
	reorderPoint int // s: reorder when on-hand inventory falls to or below this
	orderUpTo    int // S: order enough to raise inventory to this level

	jsonOutput bool // Emit the result as JSON instead of the human-readable table
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "inventory-sim",
	Short: "Periodic-review (s, S) inventory-control simulator",
}

// buildConfig assembles the simulation config from the scenario file (if
// given) overlaid by any explicitly set CLI flags.
func buildConfig(cmd *cobra.Command) (sim.SimulationConfig, sim.PolicyParameters, error) {
	config := sim.DefaultConfig()
	policy := sim.PolicyParameters{ReorderPoint: reorderPoint, OrderUpTo: orderUpTo}

	if scenarioFile != "" {
		loaded, loadedPolicy, err := LoadScenario(scenarioFile)
		if err != nil {
			return config, policy, err
		}
		config = loaded
		if loadedPolicy != nil {
			policy = *loadedPolicy
		}
	}

	// Explicit flags win over the scenario file.
	if cmd.Flags().Changed("seed") {
		config.Seed = seed
	}
	if cmd.Flags().Changed("horizon-days") {
		config.HorizonDays = horizonDays
	}
	if cmd.Flags().Changed("demand-mean") {
		config.DemandMean = demandMean
	}
	if cmd.Flags().Changed("demand-model") {
		config.DemandModel = demandModel
	}
	if cmd.Flags().Changed("lead-time-min") {
		config.LeadTimeMin = leadTimeMin
	}
	if cmd.Flags().Changed("lead-time-max") {
		config.LeadTimeMax = leadTimeMax
	}
	if cmd.Flags().Changed("holding-cost") {
		config.HoldingCostPerUnit = holdingCost
	}
	if cmd.Flags().Changed("ordering-cost") {
		config.OrderingCostPerOrder = orderingCost
	}
	if cmd.Flags().Changed("stockout-cost") {
		config.StockoutCostPerUnit = stockoutCost
	}
	if cmd.Flags().Changed("s") {
		policy.ReorderPoint = reorderPoint
	}
	if cmd.Flags().Changed("S") {
		policy.OrderUpTo = orderUpTo
	}

	return config, policy, nil
}

// runCmd evaluates a single (s, S) policy using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one inventory simulation and report its cost metrics",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		config, policy, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}

		result, err := sim.Run(config, policy)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		if jsonOutput {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				logrus.Fatalf("unable to encode result: %v", err)
			}
			fmt.Println(string(data))
			return
		}
		result.Print()
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerScenarioFlags attaches the shared scenario flags to a command.
// Defaults are the reference constants (365 days, demand 5/day, lead time
// in [2, 5], holding 1.0, ordering 20.0, stockout 5.0, seed 1).
func registerScenarioFlags(c *cobra.Command) {
	defaults := sim.DefaultConfig()
	c.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the run's random streams")
	c.Flags().IntVar(&horizonDays, "horizon-days", defaults.HorizonDays, "Total number of simulated days")
	c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().IntVar(&demandMean, "demand-mean", defaults.DemandMean, "Average daily demand in units")
	c.Flags().StringVar(&demandModel, "demand-model", defaults.DemandModel, "Demand model: bernoulli or poisson")
	c.Flags().IntVar(&leadTimeMin, "lead-time-min", defaults.LeadTimeMin, "Minimum replenishment lead time in days")
	c.Flags().IntVar(&leadTimeMax, "lead-time-max", defaults.LeadTimeMax, "Maximum replenishment lead time in days")
	c.Flags().Float64Var(&holdingCost, "holding-cost", defaults.HoldingCostPerUnit, "Holding cost per unit per day")
	c.Flags().Float64Var(&orderingCost, "ordering-cost", defaults.OrderingCostPerOrder, "Fixed cost per placed order")
	c.Flags().Float64Var(&stockoutCost, "stockout-cost", defaults.StockoutCostPerUnit, "Penalty per unit of unmet demand")
	c.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (explicit flags still win)")
}

// init sets up CLI flags and subcommands
func init() {
	registerScenarioFlags(runCmd)
	runCmd.Flags().IntVar(&reorderPoint, "s", 20, "Reorder point: order when inventory falls to or below this")
	runCmd.Flags().IntVar(&orderUpTo, "S", 50, "Order-up-to level: target inventory after an order")
	runCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the result as JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
