// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds the simulation clock, the
// inventory state, and the day loop. One Simulator evaluates exactly one
// (config, policy) pair; all of its state is created by NewSimulator and
// discarded after Run, so distinct Simulators may run concurrently.
type Simulator struct {
	Clock   int // current day, 0-based
	Horizon int // total number of days to simulate

	// Level is the current on-hand inventory, clamped at zero on
	// stockout. Unmet demand is lost, not backordered.
	Level int

	Policy PolicyParameters
	Config SimulationConfig

	Demand    DemandGenerator
	LeadTimes LeadTimeSampler
	Tracker   *ReplenishmentTracker
	Costs     *CostTotals
}

// NewSimulator validates the config and wires up a run: the partitioned
// random streams, the demand generator, the lead-time sampler, and the
// replenishment tracker. The initial on-hand level is the order-up-to
// level S (clamped at zero for degenerate negative S), matching a system
// that starts fully stocked under its own policy.
func NewSimulator(config SimulationConfig, policy PolicyParameters) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(config.Seed))

	level := policy.OrderUpTo
	if level < 0 {
		level = 0
	}

	return &Simulator{
		Clock:     0,
		Horizon:   config.HorizonDays,
		Level:     level,
		Policy:    policy,
		Config:    config,
		Demand:    NewDemandGenerator(config.DemandModel, config.DemandMean, rng.ForSubsystem(SubsystemDemand)),
		LeadTimes: NewUniformLeadTime(config.LeadTimeMin, config.LeadTimeMax, rng.ForSubsystem(SubsystemLeadTime)),
		Tracker:   &ReplenishmentTracker{},
		Costs:     &CostTotals{},
	}, nil
}

// Step executes one simulated day. The five-phase ordering is load-bearing:
// arrivals are processed strictly before that day's demand, and holding
// cost is charged on the post-demand, pre-reorder level. Reordering these
// phases changes simulated outcomes.
func (sim *Simulator) Step() {
	day := sim.Clock

	// 1. Arrival check: a due order delivers its full quantity at once.
	if quantity, arrived := sim.Tracker.Arrive(day); arrived {
		sim.Level += quantity
		logrus.Debugf("[day %03d] order arrived: +%d units, level=%d", day, quantity, sim.Level)
	}

	// 2. Demand realization. Demand beyond the on-hand level is lost and
	// penalized; the level never goes negative.
	demand := sim.Demand.Sample()
	if demand <= sim.Level {
		sim.Level -= demand
	} else {
		shortage := demand - sim.Level
		sim.Level = 0
		sim.Costs.AddStockout(shortage, sim.Config.StockoutCostPerUnit)
		logrus.Debugf("[day %03d] stockout: demand=%d, shortage=%d", day, demand, shortage)
	}

	// 3. Holding cost on the post-demand level.
	sim.Costs.AddHolding(sim.Level, sim.Config.HoldingCostPerUnit)

	// 4. Reorder decision: (s, S) rule, single-order pipeline. Ordering
	// cost is charged per trigger day; only a positive quantity enters
	// the pipeline, so a degenerate S <= s policy triggers every eligible
	// day without ever replenishing.
	if sim.Level <= sim.Policy.ReorderPoint && !sim.Tracker.Outstanding() {
		sim.Costs.AddOrdering(sim.Config.OrderingCostPerOrder)
		if quantity := sim.Policy.OrderUpTo - sim.Level; quantity > 0 {
			leadTime := sim.LeadTimes.Sample()
			sim.Tracker.Place(quantity, day+leadTime)
			logrus.Debugf("[day %03d] order placed: %d units, lead time %d days", day, quantity, leadTime)
		}
	}

	// 5. Advance the clock one day.
	sim.Clock++
}

// Run drives the day loop to the horizon and freezes the accumulated
// totals into a Result. It consumes only the Simulator's own random
// streams: no I/O, no global state, so the same seed, config, and policy
// reproduce the Result bit for bit.
func (sim *Simulator) Run() Result {
	logrus.Infof("Starting simulation with s=%d, S=%d, seed=%d, horizon=%d days",
		sim.Policy.ReorderPoint, sim.Policy.OrderUpTo, sim.Config.Seed, sim.Horizon)

	for sim.Clock < sim.Horizon {
		sim.Step()
	}

	result := newResult(sim.Costs, sim.Level)
	logrus.Infof("Simulation complete: total cost %.2f, ending inventory %d units",
		result.TotalCost, result.EndingInventory)
	return result
}

// Run evaluates one (config, policy) pair from scratch. It is the
// convenience entry point for callers that treat the engine as a pure
// objective function over (s, S).
func Run(config SimulationConfig, policy PolicyParameters) (Result, error) {
	simulator, err := NewSimulator(config, policy)
	if err != nil {
		return Result{}, err
	}
	return simulator.Run(), nil
}
