package sim

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Lower bounds accepted for the run parameters.
const (
	MinRate            = 0.1
	MinDurationTicks   = 1
	DefaultTickPeriod  = time.Second
	DefaultArrivalRate = 1.0
	DefaultServiceRate = 1.0
	DefaultDuration    = 30
)

// Config holds the parameters collected before a run starts.
// Loaded from YAML via LoadConfig(path) or assembled from CLI flags.
//
// ArrivalRate and ServiceRate are validated and reported but do not shape
// the generated durations; see Generator.
type Config struct {
	ArrivalRate float64       `yaml:"arrival_rate" json:"arrival_rate"` // λ, patients per second
	ServiceRate float64       `yaml:"service_rate" json:"service_rate"` // μ, patients per second
	Duration    int           `yaml:"duration" json:"duration"`         // run length in ticks (seconds)
	Seed        int64         `yaml:"seed" json:"seed"`
	TickPeriod  time.Duration `yaml:"tick_period" json:"tick_period"` // wall-clock pause between ticks; 0 = no pacing
}

// DefaultConfig returns the parameters used when nothing is configured.
// Seed is freshly drawn on every call, so unconfigured runs differ; the
// drawn value is kept in the Config and can be passed back to replay a run.
func DefaultConfig() Config {
	return Config{
		ArrivalRate: DefaultArrivalRate,
		ServiceRate: DefaultServiceRate,
		Duration:    DefaultDuration,
		Seed:        NewRandomSeed(),
		TickPeriod:  DefaultTickPeriod,
	}
}

// NewRandomSeed draws a seed from the runtime's randomly seeded source.
func NewRandomSeed() int64 {
	return rand.Int63()
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
// Uses strict parsing: unrecognized keys (typos) are rejected. A file
// without a seed key keeps the drawn default seed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate rejects parameters a run cannot start with.
func (c Config) Validate() error {
	if err := validateRate("arrival_rate", c.ArrivalRate); err != nil {
		return err
	}
	if err := validateRate("service_rate", c.ServiceRate); err != nil {
		return err
	}
	if c.Duration < MinDurationTicks {
		return fmt.Errorf("duration must be at least %d second(s), got %d", MinDurationTicks, c.Duration)
	}
	if c.TickPeriod < 0 {
		return fmt.Errorf("tick_period must be non-negative, got %s", c.TickPeriod)
	}
	return nil
}

func validateRate(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < MinRate {
		return fmt.Errorf("%s must be at least %.1f, got %g", name, MinRate, val)
	}
	return nil
}
