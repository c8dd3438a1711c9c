// Defines PatientRecord, the single entity produced by the generator, and the
// Priority classes used to order it.

package sim

import "fmt"

// Priority is the urgency tier of a patient. Lower values are more urgent.
type Priority int

const (
	PriorityUrgent    Priority = 1
	PriorityStandard  Priority = 2
	PriorityNonUrgent Priority = 3
)

// AllPriorities lists the priority classes from most to least urgent.
var AllPriorities = []Priority{PriorityUrgent, PriorityStandard, PriorityNonUrgent}

// Valid reports whether p is one of the defined priority classes.
func (p Priority) Valid() bool {
	return p >= PriorityUrgent && p <= PriorityNonUrgent
}

// String returns the display label of the priority class.
func (p Priority) String() string {
	switch p {
	case PriorityUrgent:
		return "URGENT"
	case PriorityStandard:
		return "STANDARD"
	case PriorityNonUrgent:
		return "NON-URGENT"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// PatientRecord is one synthesized emergency-department arrival.
// All times are whole seconds of simulated time.
type PatientRecord struct {
	ID           int      `json:"id"`            // 1-based, assigned in generation order
	InterArrival int      `json:"inter_arrival"` // seconds since the previous arrival
	ArrivalTime  int      `json:"arrival_time"`  // cumulative sum of inter-arrival times
	ServiceTime  int      `json:"service_time"`  // independent of arrival
	Priority     Priority `json:"priority"`      // 1 = most urgent
}

func (p PatientRecord) String() string {
	return fmt.Sprintf("patient#%d(arr=%d, svc=%d, prio=%d)", p.ID, p.ArrivalTime, p.ServiceTime, int(p.Priority))
}
