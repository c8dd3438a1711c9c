package sim

import "sort"

// Rank returns the records ordered by priority (most urgent first) and then
// by arrival time. Records that tie on both keep their input order, so the
// result is deterministic for a given input.
//
// The input slice and its records are never modified. An empty or nil input
// yields an empty, non-nil slice.
func Rank(records []PatientRecord) []PatientRecord {
	out := make([]PatientRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return rankLess(out[i], out[j])
	})
	return out
}

func rankLess(a, b PatientRecord) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivalTime < b.ArrivalTime
}
