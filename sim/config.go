package sim

import "fmt"

// Demand model names accepted by SimulationConfig.DemandModel.
const (
	// DemandModelBernoulli approximates a Poisson count by summing
	// 2×mean Bernoulli(0.5) trials: mean m, variance m/2, bounded by 2m.
	DemandModelBernoulli = "bernoulli"
	// DemandModelPoisson draws from a canonical Poisson distribution.
	DemandModelPoisson = "poisson"
)

// SimulationConfig groups the fixed parameters of one simulation run.
// It is supplied per run and never mutated by the engine.
type SimulationConfig struct {
	HorizonDays          int     `yaml:"horizon_days"`            // total number of simulated days (must be > 0)
	DemandMean           int     `yaml:"demand_mean"`             // average daily demand in units (must be >= 0)
	LeadTimeMin          int     `yaml:"lead_time_min"`           // minimum replenishment lead time in days (must be >= 0)
	LeadTimeMax          int     `yaml:"lead_time_max"`           // maximum replenishment lead time in days (must be >= LeadTimeMin)
	HoldingCostPerUnit   float64 `yaml:"holding_cost_per_unit"`   // cost of keeping one unit in stock for one day (must be >= 0)
	OrderingCostPerOrder float64 `yaml:"ordering_cost_per_order"` // fixed cost per placed order, independent of quantity (must be >= 0)
	StockoutCostPerUnit  float64 `yaml:"stockout_cost_per_unit"`  // penalty per unit of unmet demand (must be >= 0)
	Seed                 int64   `yaml:"seed"`                    // master seed for the run's random streams
	DemandModel          string  `yaml:"demand_model"`            // "bernoulli" (default) or "poisson"
}

// PolicyParameters is the (s, S) policy under evaluation: reorder when
// on-hand inventory falls to or below s, order up to S. The engine accepts
// any integer values, including degenerate ones (S <= s, negatives), and
// produces a well-defined result so external search loops can explore poor
// regions of the parameter space without error handling.
type PolicyParameters struct {
	ReorderPoint int `yaml:"s"` // s: inventory threshold triggering a new order
	OrderUpTo    int `yaml:"S"` // S: target inventory level after an order
}

// DefaultConfig returns the reference scenario constants: 365-day horizon,
// mean demand 5/day, lead time uniform in [2, 5] days, holding 1.0/unit/day,
// ordering 20.0/order, stockout 5.0/unit, seed 1.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		HorizonDays:          365,
		DemandMean:           5,
		LeadTimeMin:          2,
		LeadTimeMax:          5,
		HoldingCostPerUnit:   1.0,
		OrderingCostPerOrder: 20.0,
		StockoutCostPerUnit:  5.0,
		Seed:                 1,
		DemandModel:          DemandModelBernoulli,
	}
}

// ConfigError reports an invalid SimulationConfig field. It is the only
// error class the engine produces: once a run starts, all quantities are
// clamped to valid ranges and the day loop cannot fail.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid simulation config: %s %s", e.Field, e.Reason)
}

// Validate checks the config against the ranges documented on
// SimulationConfig. Negative cost rates are rejected rather than silently
// propagated into nonsensical totals.
func (c SimulationConfig) Validate() error {
	if c.HorizonDays <= 0 {
		return &ConfigError{Field: "horizon_days", Reason: fmt.Sprintf("must be > 0, got %d", c.HorizonDays)}
	}
	if c.DemandMean < 0 {
		return &ConfigError{Field: "demand_mean", Reason: fmt.Sprintf("must be >= 0, got %d", c.DemandMean)}
	}
	if c.LeadTimeMin < 0 {
		return &ConfigError{Field: "lead_time_min", Reason: fmt.Sprintf("must be >= 0, got %d", c.LeadTimeMin)}
	}
	if c.LeadTimeMax < c.LeadTimeMin {
		return &ConfigError{Field: "lead_time_max", Reason: fmt.Sprintf("must be >= lead_time_min (%d), got %d", c.LeadTimeMin, c.LeadTimeMax)}
	}
	if c.HoldingCostPerUnit < 0 {
		return &ConfigError{Field: "holding_cost_per_unit", Reason: fmt.Sprintf("must be >= 0, got %v", c.HoldingCostPerUnit)}
	}
	if c.OrderingCostPerOrder < 0 {
		return &ConfigError{Field: "ordering_cost_per_order", Reason: fmt.Sprintf("must be >= 0, got %v", c.OrderingCostPerOrder)}
	}
	if c.StockoutCostPerUnit < 0 {
		return &ConfigError{Field: "stockout_cost_per_unit", Reason: fmt.Sprintf("must be >= 0, got %v", c.StockoutCostPerUnit)}
	}
	switch c.DemandModel {
	case "", DemandModelBernoulli, DemandModelPoisson:
	default:
		return &ConfigError{Field: "demand_model", Reason: fmt.Sprintf("must be %q or %q, got %q", DemandModelBernoulli, DemandModelPoisson, c.DemandModel)}
	}
	return nil
}
