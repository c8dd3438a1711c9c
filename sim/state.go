package sim

import (
	"sync"

	"github.com/google/uuid"
)

// SimulationState owns the ordered patient collection of a single run.
// The collection is append-only during a run and is emptied by Reset at the
// start of the next one.
//
// Appends take the write lock and Records hands out a copy, so a renderer on
// another goroutine never observes a half-appended slice.
type SimulationState struct {
	mu       sync.RWMutex
	runID    string
	patients []PatientRecord
}

// NewSimulationState creates an empty state with a fresh run id.
func NewSimulationState() *SimulationState {
	return &SimulationState{
		runID:    uuid.NewString(),
		patients: make([]PatientRecord, 0),
	}
}

// Reset discards all records and assigns a new run id.
func (s *SimulationState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runID = uuid.NewString()
	s.patients = make([]PatientRecord, 0)
}

// RunID identifies the current run in logs and exports.
func (s *SimulationState) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

// Len returns the number of records generated so far.
func (s *SimulationState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients)
}

// LastArrival returns the arrival time of the newest record, or 0 when the
// collection is empty.
func (s *SimulationState) LastArrival() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.patients) == 0 {
		return 0
	}
	return s.patients[len(s.patients)-1].ArrivalTime
}

// Records returns a copy of the collection in arrival (generation) order.
func (s *SimulationState) Records() []PatientRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PatientRecord, len(s.patients))
	copy(out, s.patients)
	return out
}

// next assigns the id and arrival time for a record built from the given
// draws and appends it. Id and arrival are derived under the same lock as
// the append so concurrent generators cannot produce gaps or duplicates.
func (s *SimulationState) next(interArrival, serviceTime int, priority Priority) PatientRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := 0
	if n := len(s.patients); n > 0 {
		last = s.patients[n-1].ArrivalTime
	}
	rec := PatientRecord{
		ID:           len(s.patients) + 1,
		InterArrival: interArrival,
		ArrivalTime:  last + interArrival,
		ServiceTime:  serviceTime,
		Priority:     priority,
	}
	s.patients = append(s.patients, rec)
	return rec
}
