package sim

import "math/rand"

// LeadTimeSampler produces the number of days until a placed order
// arrives. It is consulted exactly once per placed order, not once per
// day.
type LeadTimeSampler interface {
	Sample() int
}

// UniformLeadTime draws lead times uniformly from the inclusive integer
// range [min, max].
type UniformLeadTime struct {
	min, max int
	rng      *rand.Rand
}

// NewUniformLeadTime creates a UniformLeadTime over [min, max]. The range
// is validated by SimulationConfig.Validate before construction.
func NewUniformLeadTime(min, max int, rng *rand.Rand) *UniformLeadTime {
	return &UniformLeadTime{min: min, max: max, rng: rng}
}

func (u *UniformLeadTime) Sample() int {
	return u.min + u.rng.Intn(u.max-u.min+1)
}
