// Package testutil provides shared test infrastructure for the ED simulator.
// It consolidates record fixtures and ordering assertions used across sim/,
// display/ and export/ test packages.
package testutil

import (
	"testing"

	"github.com/edsim/edsim/sim"
)

// Record builds a PatientRecord with the fields that matter for ordering.
// InterArrival and ServiceTime default to 1.
func Record(id int, priority sim.Priority, arrival int) sim.PatientRecord {
	return sim.PatientRecord{
		ID:           id,
		InterArrival: 1,
		ArrivalTime:  arrival,
		ServiceTime:  1,
		Priority:     priority,
	}
}

// Generate runs a seeded Generator n times on a fresh state and returns the
// records in generation order.
func Generate(t *testing.T, seed int64, n int) []sim.PatientRecord {
	t.Helper()
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
	gen := sim.NewGenerator(rng.ForSubsystem(sim.SubsystemPatients))
	state := sim.NewSimulationState()
	for i := 0; i < n; i++ {
		gen.Generate(state)
	}
	return state.Records()
}

// IDs extracts the record ids in slice order.
func IDs(records []sim.PatientRecord) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// AssertRankedOrder fails the test unless every adjacent pair satisfies
// priority ascending, then arrival time ascending.
func AssertRankedOrder(t *testing.T, records []sim.PatientRecord) {
	t.Helper()
	for i := 1; i < len(records); i++ {
		a, b := records[i-1], records[i]
		if a.Priority < b.Priority {
			continue
		}
		if a.Priority == b.Priority && a.ArrivalTime <= b.ArrivalTime {
			continue
		}
		t.Errorf("records[%d]=%s before records[%d]=%s violates priority/arrival order", i-1, a, i, b)
	}
}

// AssertPermutation fails the test unless got holds exactly the records of
// want, each the same number of times.
func AssertPermutation(t *testing.T, want, got []sim.PatientRecord) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: got %d records, want %d", len(got), len(want))
	}
	counts := make(map[sim.PatientRecord]int, len(want))
	for _, r := range want {
		counts[r]++
	}
	for _, r := range got {
		counts[r]--
	}
	for r, c := range counts {
		if c != 0 {
			t.Errorf("record %s count differs by %d", r, c)
		}
	}
}
