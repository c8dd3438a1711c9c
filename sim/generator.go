package sim

import (
	"math/rand"
)

// Generator produces one PatientRecord per call and appends it to a
// SimulationState.
//
// The configured arrival and service rates do not influence the draws:
// inter-arrival and service times are always uniform on
// [MinDurationSeconds, MaxDurationSeconds].
type Generator struct {
	rng          *rand.Rand
	interArrival DurationSampler
	service      DurationSampler
	priority     PrioritySampler
}

// NewGenerator builds a Generator with the default uniform samplers drawing
// from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	durations := &UniformIntSampler{min: MinDurationSeconds, max: MaxDurationSeconds}
	return NewGeneratorWithSamplers(rng, durations, durations, &UniformPrioritySampler{classes: AllPriorities})
}

// NewGeneratorWithSamplers builds a Generator from explicit samplers.
func NewGeneratorWithSamplers(rng *rand.Rand, interArrival, service DurationSampler, priority PrioritySampler) *Generator {
	if rng == nil || interArrival == nil || service == nil || priority == nil {
		panic("NewGeneratorWithSamplers: rng and samplers must not be nil")
	}
	return &Generator{rng: rng, interArrival: interArrival, service: service, priority: priority}
}

// Generate draws a new patient and appends it to state.
// Draw order is inter-arrival, service, priority; changing it changes every
// seeded run.
func (g *Generator) Generate(state *SimulationState) PatientRecord {
	interArrival := g.interArrival.Sample(g.rng)
	serviceTime := g.service.Sample(g.rng)
	priority := g.priority.Sample(g.rng)
	return state.next(interArrival, serviceTime, priority)
}
