package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/edsim/edsim/sim"
)

// Text shown around the tables.
const (
	EndedMessage = "Simulation Ended."
	RankedTitle  = "Patients Sorted by Priority"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// StatusLine formats the countdown shown on every tick.
func StatusLine(remaining int) string {
	return fmt.Sprintf("Time Remaining: %d seconds", remaining)
}

// LiveRenderer redraws the countdown and the arrival table on every tick,
// then prints the priority table once the run ends.
type LiveRenderer struct {
	out   io.Writer
	clear bool
}

// NewLiveRenderer writes frames to out. When clear is set each frame
// replaces the previous one on screen.
func NewLiveRenderer(out io.Writer, clear bool) *LiveRenderer {
	return &LiveRenderer{out: out, clear: clear}
}

func (l *LiveRenderer) OnTick(status sim.TickStatus, records []sim.PatientRecord) {
	var sb strings.Builder
	if l.clear {
		sb.WriteString(clearScreen)
	}
	sb.WriteString(statusStyle.Render(StatusLine(status.Remaining)))
	sb.WriteString("\n")
	sb.WriteString(RenderTable(records))
	sb.WriteString("\n")
	fmt.Fprint(l.out, sb.String())
}

func (l *LiveRenderer) OnComplete(result *sim.RunResult) {
	if l.clear {
		fmt.Fprint(l.out, clearScreen)
	}
	fmt.Fprintln(l.out, statusStyle.Render(EndedMessage))
	fmt.Fprintln(l.out, RenderTable(result.Arrivals))
	writeRanked(l.out, result)
}

// writeRanked prints the priority table and a one-line summary.
func writeRanked(out io.Writer, result *sim.RunResult) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render(RankedTitle))
	fmt.Fprintln(out, RenderTable(result.Ranked))
	fmt.Fprintln(out, mutedStyle.Render(SummaryLine(result.Summary)))
}

// SummaryLine condenses a RunSummary into one line.
func SummaryLine(s sim.RunSummary) string {
	return fmt.Sprintf("%d patients (urgent %d, standard %d, non-urgent %d), mean inter-arrival %.2fs, mean service %.2fs",
		s.Patients,
		s.ByPriority[sim.PriorityUrgent], s.ByPriority[sim.PriorityStandard], s.ByPriority[sim.PriorityNonUrgent],
		s.MeanInterArrival, s.MeanServiceTime)
}
