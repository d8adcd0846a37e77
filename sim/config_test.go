package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_ReferenceConstants(t *testing.T) {
	got := DefaultConfig()
	want := SimulationConfig{
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
	assert.Equal(t, want, got)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationConfig)
		field  string
	}{
		{"zero horizon", func(c *SimulationConfig) { c.HorizonDays = 0 }, "horizon_days"},
		{"negative horizon", func(c *SimulationConfig) { c.HorizonDays = -10 }, "horizon_days"},
		{"negative demand mean", func(c *SimulationConfig) { c.DemandMean = -1 }, "demand_mean"},
		{"negative lead time min", func(c *SimulationConfig) { c.LeadTimeMin = -1 }, "lead_time_min"},
		{"inverted lead time range", func(c *SimulationConfig) { c.LeadTimeMin = 5; c.LeadTimeMax = 2 }, "lead_time_max"},
		{"negative holding cost", func(c *SimulationConfig) { c.HoldingCostPerUnit = -0.5 }, "holding_cost_per_unit"},
		{"negative ordering cost", func(c *SimulationConfig) { c.OrderingCostPerOrder = -20 }, "ordering_cost_per_order"},
		{"negative stockout cost", func(c *SimulationConfig) { c.StockoutCostPerUnit = -5 }, "stockout_cost_per_unit"},
		{"unknown demand model", func(c *SimulationConfig) { c.DemandModel = "gaussian" }, "demand_model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected a ConfigError, got %T", err)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestValidate_EmptyDemandModelDefaultsToBernoulli(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DemandModel = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PointLeadTimeRange(t *testing.T) {
	// min == max is a valid, deterministic lead time
	cfg := DefaultConfig()
	cfg.LeadTimeMin = 3
	cfg.LeadTimeMax = 3
	assert.NoError(t, cfg.Validate())
}
