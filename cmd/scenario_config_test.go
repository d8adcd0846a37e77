package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenario_FullDocument(t *testing.T) {
	path := writeScenario(t, `
config:
  horizon_days: 100
  demand_mean: 3
  lead_time_min: 1
  lead_time_max: 4
  holding_cost_per_unit: 2.0
  ordering_cost_per_order: 15.0
  stockout_cost_per_unit: 8.0
  seed: 7
  demand_model: poisson
policy:
  s: 10
  S: 30
`)

	config, policy, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, sim.SimulationConfig{
		HorizonDays:          100,
		DemandMean:           3,
		LeadTimeMin:          1,
		LeadTimeMax:          4,
		HoldingCostPerUnit:   2.0,
		OrderingCostPerOrder: 15.0,
		StockoutCostPerUnit:  8.0,
		Seed:                 7,
		DemandModel:          sim.DemandModelPoisson,
	}, config)
	require.NotNil(t, policy)
	assert.Equal(t, sim.PolicyParameters{ReorderPoint: 10, OrderUpTo: 30}, *policy)
}

func TestLoadScenario_OmittedFieldsKeepDefaults(t *testing.T) {
	path := writeScenario(t, `
config:
  horizon_days: 30
`)

	config, policy, err := LoadScenario(path)
	require.NoError(t, err)

	want := sim.DefaultConfig()
	want.HorizonDays = 30
	assert.Equal(t, want, config)
	assert.Nil(t, policy, "file without a policy section yields no policy")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, _, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "config: [not a mapping")
	_, _, err := LoadScenario(path)
	require.Error(t, err)
}
