package sim

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// SweepRange describes an inclusive stepped grid of (s, S) pairs.
type SweepRange struct {
	SMin  int `yaml:"s_min"`  // smallest reorder point to evaluate
	SMax  int `yaml:"s_max"`  // largest reorder point to evaluate
	UpMin int `yaml:"up_min"` // smallest order-up-to level to evaluate
	UpMax int `yaml:"up_max"` // largest order-up-to level to evaluate
	Step  int `yaml:"step"`   // grid step, defaults to 1
}

// SweepPoint is one evaluated policy and its objective value.
type SweepPoint struct {
	Policy PolicyParameters `yaml:"policy"`
	Result Result           `yaml:"result"`
}

// Sweep evaluates every (s, S) pair on the grid, each on its own Simulator
// with its own random streams, distributed over at most workers
// goroutines. Degenerate pairs are evaluated like any other: poor regions
// of the parameter space are data for the caller's search, not errors.
// The returned slice is in grid order (s outer, S inner) regardless of
// worker count, and is bit-identical across repeated calls.
func Sweep(config SimulationConfig, grid SweepRange, workers int) ([]SweepPoint, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	step := grid.Step
	if step <= 0 {
		step = 1
	}
	if grid.SMax < grid.SMin || grid.UpMax < grid.UpMin {
		return nil, fmt.Errorf("sweep grid is empty: s in [%d,%d], S in [%d,%d]",
			grid.SMin, grid.SMax, grid.UpMin, grid.UpMax)
	}
	if workers <= 0 {
		workers = 1
	}

	var policies []PolicyParameters
	for s := grid.SMin; s <= grid.SMax; s += step {
		for S := grid.UpMin; S <= grid.UpMax; S += step {
			policies = append(policies, PolicyParameters{ReorderPoint: s, OrderUpTo: S})
		}
	}

	logrus.Infof("Sweeping %d policies with %d workers", len(policies), workers)

	points := make([]SweepPoint, len(policies))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Config is already validated; each point owns its Simulator.
				simulator, err := NewSimulator(config, policies[i])
				if err != nil {
					logrus.Panicf("validated config rejected by NewSimulator: %v", err)
				}
				points[i] = SweepPoint{Policy: policies[i], Result: simulator.Run()}
			}
		}()
	}
	for i := range policies {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return points, nil
}

// Best returns the sweep point with the lowest total cost, ties broken by
// grid order. The second return is false for an empty sweep.
func Best(points []SweepPoint) (SweepPoint, bool) {
	if len(points) == 0 {
		return SweepPoint{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.Result.TotalCost < best.Result.TotalCost {
			best = p
		}
	}
	return best, true
}
