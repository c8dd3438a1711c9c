package trace

// TraceSummary aggregates statistics from a TickTrace.
type TraceSummary struct {
	TotalTicks       int
	GeneratedCount   int
	GateRate         float64 // GeneratedCount / TotalTicks
	LongestIdleRun   int     // most consecutive ticks without an arrival
	FirstArrivalTick int     // -1 when no patient arrived
}

// Summarize computes aggregate statistics from a TickTrace.
// Safe for nil or empty traces.
func Summarize(tt *TickTrace) *TraceSummary {
	summary := &TraceSummary{FirstArrivalTick: -1}
	if tt == nil {
		return summary
	}

	summary.TotalTicks = len(tt.Ticks)
	idle := 0
	for _, r := range tt.Ticks {
		if !r.Generated {
			idle++
			if idle > summary.LongestIdleRun {
				summary.LongestIdleRun = idle
			}
			continue
		}
		idle = 0
		summary.GeneratedCount++
		if summary.FirstArrivalTick < 0 {
			summary.FirstArrivalTick = r.Tick
		}
	}

	if summary.TotalTicks > 0 {
		summary.GateRate = float64(summary.GeneratedCount) / float64(summary.TotalTicks)
	}
	return summary
}
