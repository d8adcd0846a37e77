// Package sim provides the core of a single-product periodic-review
// inventory-control simulator under an (s, S) reorder policy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - simulator.go: the day loop (arrival → demand → holding cost → reorder) and the Run entry point
//   - replenishment.go: the single-outstanding-order pipeline state machine
//   - costs.go: holding / ordering / stockout cost accumulation
//
// # Architecture
//
// Each call to Run (or NewSimulator + Run) is a closed, stateless
// computation: the Simulator owns its inventory level, its cost totals,
// and its random streams, and discards them at the end of the horizon.
// Nothing is shared between runs, so callers sweeping a policy grid may
// evaluate many (s, S) pairs concurrently (see sweep.go).
//
// # Key Interfaces
//
// The extension points are single-method interfaces:
//   - DemandGenerator: one non-negative demand draw per simulated day
//     (demand.go; Bernoulli-sum approximation by default, gonum Poisson
//     as an alternative)
//   - LeadTimeSampler: one integer lead-time draw per placed order
//     (leadtime.go; uniform on an inclusive range)
//
// Randomness is threaded explicitly: a PartitionedRNG (rng.go) derives an
// isolated deterministic stream per subsystem from the run's seed, so the
// same seed, config, and policy always reproduce the same Result.
package sim
