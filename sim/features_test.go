package sim_test

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/edsim/edsim/sim"
	"github.com/edsim/edsim/sim/internal/testutil"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "edsim",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type featureContext struct {
	state   *sim.SimulationState
	gen     *sim.Generator
	records []sim.PatientRecord
	ranked  []sim.PatientRecord
}

func InitializeScenario(sc *godog.ScenarioContext) {
	fc := &featureContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*fc = featureContext{}
		return ctx, nil
	})

	sc.Step(`^the patients:$`, fc.thePatients)
	sc.Step(`^no patients$`, fc.noPatients)
	sc.Step(`^(\d+) patients generated with seed (\d+)$`, fc.patientsGeneratedWithSeed)
	sc.Step(`^the patients are ranked$`, fc.thePatientsAreRanked)
	sc.Step(`^the ranked ids are "([^"]*)"$`, fc.theRankedIDsAre)
	sc.Step(`^ranking again gives the same order$`, fc.rankingAgainGivesTheSameOrder)
	sc.Step(`^an empty run with seed (\d+)$`, fc.anEmptyRunWithSeed)
	sc.Step(`^(\d+) patients? (?:is|are) generated$`, fc.patientsAreGenerated)
	sc.Step(`^a new run starts$`, fc.aNewRunStarts)
	sc.Step(`^the run holds (\d+) patients?$`, fc.theRunHolds)
	sc.Step(`^patient (\d+) arrives after its own inter-arrival time$`, fc.arrivesAfterOwnInterArrival)
}

func (fc *featureContext) thePatients(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: want 3 cells, got %d", i, len(row.Cells))
		}
		vals := make([]int, 3)
		for j, c := range row.Cells {
			v, err := strconv.Atoi(c.Value)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			vals[j] = v
		}
		fc.records = append(fc.records, testutil.Record(vals[0], sim.Priority(vals[1]), vals[2]))
	}
	return nil
}

func (fc *featureContext) noPatients() error {
	fc.records = nil
	return nil
}

func (fc *featureContext) patientsGeneratedWithSeed(n int, seed int64) error {
	gen := sim.NewGenerator(rand.New(rand.NewSource(seed)))
	state := sim.NewSimulationState()
	for i := 0; i < n; i++ {
		gen.Generate(state)
	}
	fc.records = state.Records()
	return nil
}

func (fc *featureContext) thePatientsAreRanked() error {
	fc.ranked = sim.Rank(fc.records)
	return nil
}

func (fc *featureContext) theRankedIDsAre(want string) error {
	parts := make([]string, len(fc.ranked))
	for i, r := range fc.ranked {
		parts[i] = strconv.Itoa(r.ID)
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("ranked ids = %q, want %q", got, want)
	}
	return nil
}

func (fc *featureContext) rankingAgainGivesTheSameOrder() error {
	again := sim.Rank(fc.records)
	if len(again) != len(fc.ranked) {
		return fmt.Errorf("second ranking has %d records, first had %d", len(again), len(fc.ranked))
	}
	for i := range again {
		if again[i] != fc.ranked[i] {
			return fmt.Errorf("position %d differs: %s vs %s", i, again[i], fc.ranked[i])
		}
	}
	return nil
}

func (fc *featureContext) anEmptyRunWithSeed(seed int64) error {
	fc.state = sim.NewSimulationState()
	fc.gen = sim.NewGenerator(rand.New(rand.NewSource(seed)))
	return nil
}

func (fc *featureContext) patientsAreGenerated(n int) error {
	for i := 0; i < n; i++ {
		fc.gen.Generate(fc.state)
	}
	return nil
}

func (fc *featureContext) aNewRunStarts() error {
	fc.state.Reset()
	return nil
}

func (fc *featureContext) theRunHolds(n int) error {
	if got := fc.state.Len(); got != n {
		return fmt.Errorf("run holds %d patients, want %d", got, n)
	}
	return nil
}

func (fc *featureContext) arrivesAfterOwnInterArrival(id int) error {
	records := fc.state.Records()
	if id < 1 || id > len(records) {
		return fmt.Errorf("no patient %d in a run of %d", id, len(records))
	}
	r := records[id-1]
	if r.ID != id {
		return fmt.Errorf("record at position %d has id %d", id-1, r.ID)
	}
	if r.ArrivalTime != r.InterArrival {
		return fmt.Errorf("patient %d arrives at %d, want %d", id, r.ArrivalTime, r.InterArrival)
	}
	return nil
}
