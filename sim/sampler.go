package sim

import (
	"fmt"
	"math/rand"
)

// Bounds of the closed range every duration is drawn from.
const (
	MinDurationSeconds = 1
	MaxDurationSeconds = 5
)

// DurationSampler generates whole-second durations.
type DurationSampler interface {
	// Sample returns a duration in seconds (>= 1).
	Sample(rng *rand.Rand) int
}

// UniformIntSampler draws uniformly from the closed integer range [min, max].
type UniformIntSampler struct {
	min, max int
}

// NewUniformIntSampler returns a sampler over [min, max]. min must be >= 1
// and no greater than max.
func NewUniformIntSampler(min, max int) (*UniformIntSampler, error) {
	if min < 1 {
		return nil, fmt.Errorf("uniform sampler min must be >= 1, got %d", min)
	}
	if max < min {
		return nil, fmt.Errorf("uniform sampler max (%d) must be >= min (%d)", max, min)
	}
	return &UniformIntSampler{min: min, max: max}, nil
}

func (s *UniformIntSampler) Sample(rng *rand.Rand) int {
	if s.min == s.max {
		return s.min
	}
	return s.min + rng.Intn(s.max-s.min+1)
}

// PrioritySampler draws a priority class.
type PrioritySampler interface {
	Sample(rng *rand.Rand) Priority
}

// UniformPrioritySampler picks uniformly among a fixed set of classes.
type UniformPrioritySampler struct {
	classes []Priority
}

// NewUniformPrioritySampler returns a sampler over the given classes.
// An empty list selects AllPriorities.
func NewUniformPrioritySampler(classes ...Priority) (*UniformPrioritySampler, error) {
	if len(classes) == 0 {
		classes = AllPriorities
	}
	for _, c := range classes {
		if !c.Valid() {
			return nil, fmt.Errorf("unknown priority class %d", int(c))
		}
	}
	cp := make([]Priority, len(classes))
	copy(cp, classes)
	return &UniformPrioritySampler{classes: cp}, nil
}

func (s *UniformPrioritySampler) Sample(rng *rand.Rand) Priority {
	return s.classes[rng.Intn(len(s.classes))]
}
