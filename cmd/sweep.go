package cmd

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

var (
	// CLI flags for the sweep grid
	sweepSMin    int  // Smallest reorder point on the grid
	sweepSMax    int  // Largest reorder point on the grid
	sweepUpMin   int  // Smallest order-up-to level on the grid
	sweepUpMax   int  // Largest order-up-to level on the grid
	sweepStep    int  // Grid step
	sweepWorkers int  // Number of concurrent evaluations
	sweepAll     bool // Report every evaluated point, not only the best
)

// sweepReport is the YAML document emitted by the sweep command.
type sweepReport struct {
	Best   sim.SweepPoint   `yaml:"best"`
	Points []sim.SweepPoint `yaml:"points,omitempty"`
}

// sweepCmd evaluates a grid of (s, S) policies and reports the cheapest
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Grid-search (s, S) policies and report the lowest-cost one",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		config, _, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}

		grid := sim.SweepRange{
			SMin:  sweepSMin,
			SMax:  sweepSMax,
			UpMin: sweepUpMin,
			UpMax: sweepUpMax,
			Step:  sweepStep,
		}
		points, err := sim.Sweep(config, grid, sweepWorkers)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}

		best, ok := sim.Best(points)
		if !ok {
			logrus.Fatalf("sweep produced no points")
		}

		report := sweepReport{Best: best}
		if sweepAll {
			report.Points = points
		}
		data, err := yaml.Marshal(report)
		if err != nil {
			logrus.Fatalf("unable to encode sweep report: %v", err)
		}
		fmt.Print(string(data))
	},
}

func init() {
	registerScenarioFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepSMin, "s-min", 0, "Smallest reorder point on the grid")
	sweepCmd.Flags().IntVar(&sweepSMax, "s-max", 40, "Largest reorder point on the grid")
	sweepCmd.Flags().IntVar(&sweepUpMin, "up-min", 10, "Smallest order-up-to level on the grid")
	sweepCmd.Flags().IntVar(&sweepUpMax, "up-max", 100, "Largest order-up-to level on the grid")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 5, "Grid step for both dimensions")
	sweepCmd.Flags().IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "Number of concurrent evaluations")
	sweepCmd.Flags().BoolVar(&sweepAll, "all", false, "Report every evaluated point, not only the best")

	rootCmd.AddCommand(sweepCmd)
}
