package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inventory-sim/inventory-sim/sim"
)

// Scenario is the YAML document accepted by --scenario: the simulation
// config plus an optional (s, S) policy.
type Scenario struct {
	Config sim.SimulationConfig  `yaml:"config"`
	Policy *sim.PolicyParameters `yaml:"policy"`
}

// LoadScenario reads a YAML scenario file. Omitted config fields keep the
// reference defaults; the policy is nil when the file does not set one.
func LoadScenario(path string) (sim.SimulationConfig, *sim.PolicyParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.SimulationConfig{}, nil, fmt.Errorf("reading scenario file: %w", err)
	}

	scenario := Scenario{Config: sim.DefaultConfig()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return sim.SimulationConfig{}, nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	return scenario.Config, scenario.Policy, nil
}
