// Implements the driving loop: one tick per simulated second, a coin flip per
// tick deciding whether a patient arrives, and a single ranking pass at the end.

package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/sim/trace"
)

// ArrivalProbability is the per-tick chance that the Generator is invoked.
const ArrivalProbability = 0.5

// TickStatus describes one iteration of the driving loop.
type TickStatus struct {
	Tick      int            // 0-based tick index
	Duration  int            // total ticks in the run
	Remaining int            // Duration - Tick
	Patient   *PatientRecord // non-nil when a patient arrived on this tick
}

// Observer receives the state of a run as it progresses. Records passed to
// an Observer are snapshots; retaining or modifying them does not affect the
// run.
type Observer interface {
	OnTick(status TickStatus, records []PatientRecord)
	OnComplete(result *RunResult)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) OnTick(TickStatus, []PatientRecord) {}
func (NopObserver) OnComplete(*RunResult)              {}

// RunResult is the outcome of a finished run.
type RunResult struct {
	RunID    string           `json:"run_id"`
	Config   Config           `json:"config"`
	Arrivals []PatientRecord  `json:"arrivals"` // generation order
	Ranked   []PatientRecord  `json:"ranked"`   // priority order
	Summary  RunSummary       `json:"summary"`
	Trace    *trace.TickTrace `json:"trace,omitempty"`
}

// DriverOption customizes a Driver.
type DriverOption func(*Driver)

// WithSleeper replaces time.Sleep for tick pacing.
func WithSleeper(sleep func(time.Duration)) DriverOption {
	return func(d *Driver) { d.sleep = sleep }
}

// WithTraceLevel enables per-tick tracing at the given level.
func WithTraceLevel(level trace.TraceLevel) DriverOption {
	return func(d *Driver) { d.traceLevel = level }
}

// Driver runs the tick loop over a SimulationState.
//
// Thread-safety: Start must not be called concurrently on the same Driver.
type Driver struct {
	cfg        Config
	state      *SimulationState
	observer   Observer
	sleep      func(time.Duration)
	traceLevel trace.TraceLevel
}

// NewDriver validates cfg and returns a Driver over state. A nil observer is
// replaced with NopObserver.
func NewDriver(cfg Config, state *SimulationState, observer Observer, opts ...DriverOption) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("simulation state must not be nil")
	}
	if observer == nil {
		observer = NopObserver{}
	}
	d := &Driver{
		cfg:        cfg,
		state:      state,
		observer:   observer,
		sleep:      time.Sleep,
		traceLevel: trace.TraceLevelNone,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Start resets the state and runs the loop to completion. Every call begins
// from an empty collection and a freshly seeded RNG, so repeated calls with
// the same config produce the same records.
func (d *Driver) Start() *RunResult {
	d.state.Reset()

	rng := NewPartitionedRNG(NewSimulationKey(d.cfg.Seed))
	gen := NewGenerator(rng.ForSubsystem(SubsystemPatients))
	gate := rng.ForSubsystem(SubsystemArrivalGate)
	tt := trace.NewTickTrace(d.traceLevel)

	logger := logrus.WithField("run_id", d.state.RunID())
	logger.Infof("Starting run: duration=%ds seed=%d arrival_rate=%g service_rate=%g",
		d.cfg.Duration, d.cfg.Seed, d.cfg.ArrivalRate, d.cfg.ServiceRate)
	logger.Debug("arrival and service rates are informational; durations are drawn uniformly from [1,5]")

	for tick := 0; tick < d.cfg.Duration; tick++ {
		status := d.step(tick, gen, gate)
		rec := trace.TickRecord{Tick: tick, Remaining: status.Remaining}
		if status.Patient != nil {
			rec.Generated = true
			rec.PatientID = status.Patient.ID
			logger.Debugf("tick %d: generated %s", tick, status.Patient)
		}
		tt.Record(rec)

		d.observer.OnTick(status, d.state.Records())
		if d.cfg.TickPeriod > 0 {
			d.sleep(d.cfg.TickPeriod)
		}
	}

	arrivals := d.state.Records()
	result := &RunResult{
		RunID:    d.state.RunID(),
		Config:   d.cfg,
		Arrivals: arrivals,
		Ranked:   Rank(arrivals),
		Summary:  Summarize(arrivals),
	}
	if tt.Enabled() {
		result.Trace = tt
	}
	logger.Infof("Run complete: %d patients over %d ticks", len(arrivals), d.cfg.Duration)

	d.observer.OnComplete(result)
	return result
}

// step performs the arrival-gate draw for one tick.
func (d *Driver) step(tick int, gen *Generator, gate *rand.Rand) TickStatus {
	status := TickStatus{
		Tick:      tick,
		Duration:  d.cfg.Duration,
		Remaining: d.cfg.Duration - tick,
	}
	if gate.Float64() < ArrivalProbability {
		p := gen.Generate(d.state)
		status.Patient = &p
	}
	return status
}
