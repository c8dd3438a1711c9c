// Package trace records the per-tick arrival-gate decisions of a run.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// TickRecord captures what happened on a single tick of the driving loop.
type TickRecord struct {
	Tick      int  `json:"tick"`
	Remaining int  `json:"remaining"`            // seconds left after this tick started
	Generated bool `json:"generated"`            // the arrival gate opened
	PatientID int  `json:"patient_id,omitempty"` // 0 when no patient was generated
}
