package sim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edsim/edsim/sim"
	"github.com/edsim/edsim/sim/internal/testutil"
	"github.com/edsim/edsim/sim/trace"
)

// recordingObserver keeps every notification for later inspection.
type recordingObserver struct {
	ticks     []sim.TickStatus
	snapshots [][]sim.PatientRecord
	result    *sim.RunResult
	completed int
}

func (o *recordingObserver) OnTick(status sim.TickStatus, records []sim.PatientRecord) {
	o.ticks = append(o.ticks, status)
	o.snapshots = append(o.snapshots, records)
}

func (o *recordingObserver) OnComplete(result *sim.RunResult) {
	o.result = result
	o.completed++
}

func testConfig(duration int, seed int64) sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Duration = duration
	cfg.Seed = seed
	cfg.TickPeriod = 0
	return cfg
}

func TestNewDriver_InvalidConfig_ReturnsError(t *testing.T) {
	cfg := testConfig(0, 1)
	_, err := sim.NewDriver(cfg, sim.NewSimulationState(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestNewDriver_NilState_ReturnsError(t *testing.T) {
	_, err := sim.NewDriver(testConfig(5, 1), nil, nil)
	assert.Error(t, err)
}

func TestDriver_Start_OneNotificationPerTick(t *testing.T) {
	// GIVEN a 20-tick run
	obs := &recordingObserver{}
	d, err := sim.NewDriver(testConfig(20, 42), sim.NewSimulationState(), obs)
	require.NoError(t, err)

	// WHEN started
	result := d.Start()

	// THEN the observer saw 20 ticks counting down from 20 to 1, then completion
	require.Len(t, obs.ticks, 20)
	for i, st := range obs.ticks {
		assert.Equal(t, i, st.Tick)
		assert.Equal(t, 20, st.Duration)
		assert.Equal(t, 20-i, st.Remaining)
	}
	assert.Equal(t, 1, obs.completed)
	assert.Same(t, result, obs.result)
}

func TestDriver_Start_SnapshotsGrowWithArrivals(t *testing.T) {
	obs := &recordingObserver{}
	d, err := sim.NewDriver(testConfig(50, 9), sim.NewSimulationState(), obs)
	require.NoError(t, err)

	d.Start()

	prev := 0
	for i, st := range obs.ticks {
		n := len(obs.snapshots[i])
		if st.Patient != nil {
			assert.Equal(t, prev+1, n, "tick %d generated a patient", i)
			assert.Equal(t, n, st.Patient.ID)
		} else {
			assert.Equal(t, prev, n, "tick %d generated nothing", i)
		}
		prev = n
	}
}

func TestDriver_Start_ResultHoldsBothViews(t *testing.T) {
	d, err := sim.NewDriver(testConfig(60, 3), sim.NewSimulationState(), nil)
	require.NoError(t, err)

	result := d.Start()

	require.NotEmpty(t, result.Arrivals)
	for i, r := range result.Arrivals {
		assert.Equal(t, i+1, r.ID)
	}
	testutil.AssertPermutation(t, result.Arrivals, result.Ranked)
	testutil.AssertRankedOrder(t, result.Ranked)
	assert.Equal(t, len(result.Arrivals), result.Summary.Patients)
	assert.Nil(t, result.Trace, "trace disabled by default")
}

func TestDriver_Start_SameSeed_SameRun(t *testing.T) {
	d1, err := sim.NewDriver(testConfig(40, 5), sim.NewSimulationState(), nil)
	require.NoError(t, err)
	d2, err := sim.NewDriver(testConfig(40, 5), sim.NewSimulationState(), nil)
	require.NoError(t, err)

	assert.Equal(t, d1.Start().Arrivals, d2.Start().Arrivals)
}

func TestDriver_Start_NewRunResetsCollection(t *testing.T) {
	// GIVEN a state populated by a previous run
	state := sim.NewSimulationState()
	d, err := sim.NewDriver(testConfig(30, 4), state, nil)
	require.NoError(t, err)
	first := d.Start()
	require.NotEmpty(t, first.Arrivals)
	firstRun := first.RunID

	// WHEN a second run starts on the same state
	second := d.Start()

	// THEN ids restart at 1 and the run id changes
	require.NotEmpty(t, second.Arrivals)
	assert.Equal(t, 1, second.Arrivals[0].ID)
	assert.Equal(t, len(second.Arrivals), state.Len())
	assert.NotEqual(t, firstRun, second.RunID)
}

func TestDriver_Start_SleepsOncePerTick(t *testing.T) {
	cfg := testConfig(7, 1)
	cfg.TickPeriod = time.Second
	var slept []time.Duration
	d, err := sim.NewDriver(cfg, sim.NewSimulationState(), nil,
		sim.WithSleeper(func(p time.Duration) { slept = append(slept, p) }))
	require.NoError(t, err)

	d.Start()

	assert.Len(t, slept, 7)
	for _, p := range slept {
		assert.Equal(t, time.Second, p)
	}
}

func TestDriver_Start_ZeroTickPeriod_NeverSleeps(t *testing.T) {
	called := false
	d, err := sim.NewDriver(testConfig(5, 1), sim.NewSimulationState(), nil,
		sim.WithSleeper(func(time.Duration) { called = true }))
	require.NoError(t, err)

	d.Start()

	assert.False(t, called)
}

func TestDriver_Start_TraceMatchesArrivals(t *testing.T) {
	d, err := sim.NewDriver(testConfig(100, 12), sim.NewSimulationState(), nil,
		sim.WithTraceLevel(trace.TraceLevelTicks))
	require.NoError(t, err)

	result := d.Start()

	require.NotNil(t, result.Trace)
	require.Len(t, result.Trace.Ticks, 100)
	summary := trace.Summarize(result.Trace)
	assert.Equal(t, len(result.Arrivals), summary.GeneratedCount)
	// Bernoulli(0.5) over 100 ticks lands well inside [20, 80] for any sane seed.
	assert.InDelta(t, 0.5, summary.GateRate, 0.3)
}
