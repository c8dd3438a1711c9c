package sim

// RunSummary aggregates a run's patient records.
type RunSummary struct {
	Patients         int              `json:"patients"`
	ByPriority       map[Priority]int `json:"by_priority"`
	MeanInterArrival float64          `json:"mean_inter_arrival"`
	MeanServiceTime  float64          `json:"mean_service_time"`
	LastArrival      int              `json:"last_arrival"`
	TotalServiceTime int              `json:"total_service_time"`
}

// Summarize computes a RunSummary. Safe for nil or empty input; every
// priority class is present in ByPriority, zero-valued when unseen.
func Summarize(records []PatientRecord) RunSummary {
	summary := RunSummary{ByPriority: make(map[Priority]int, len(AllPriorities))}
	for _, p := range AllPriorities {
		summary.ByPriority[p] = 0
	}
	if len(records) == 0 {
		return summary
	}

	totalInterArrival := 0
	for _, r := range records {
		summary.ByPriority[r.Priority]++
		totalInterArrival += r.InterArrival
		summary.TotalServiceTime += r.ServiceTime
		if r.ArrivalTime > summary.LastArrival {
			summary.LastArrival = r.ArrivalTime
		}
	}
	summary.Patients = len(records)
	summary.MeanInterArrival = float64(totalInterArrival) / float64(len(records))
	summary.MeanServiceTime = float64(summary.TotalServiceTime) / float64(len(records))
	return summary
}
