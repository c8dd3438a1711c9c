package display

import (
	"fmt"
	"io"

	"github.com/edsim/edsim/sim"
)

// Mode selects how a run is shown.
type Mode string

const (
	// ModeLive redraws the countdown and table every tick.
	ModeLive Mode = "live"
	// ModeProgress shows a countdown bar and prints tables at the end.
	ModeProgress Mode = "progress"
	// ModeFinal prints only the final tables.
	ModeFinal Mode = "final"
	// ModeQuiet prints nothing.
	ModeQuiet Mode = "quiet"
)

var validModes = map[Mode]bool{ModeLive: true, ModeProgress: true, ModeFinal: true, ModeQuiet: true}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !validModes[m] {
		return "", fmt.Errorf("unknown display mode %q; valid: live, progress, final, quiet", s)
	}
	return m, nil
}

// NewObserver builds the observer for mode. Tables go to out; the progress
// bar goes to errOut.
func NewObserver(mode Mode, out, errOut io.Writer) (sim.Observer, error) {
	switch mode {
	case ModeLive:
		return NewLiveRenderer(out, true), nil
	case ModeProgress:
		return NewProgressRenderer(out, errOut), nil
	case ModeFinal:
		return &finalRenderer{out: out}, nil
	case ModeQuiet:
		return sim.NopObserver{}, nil
	default:
		return nil, fmt.Errorf("unknown display mode %q", mode)
	}
}

// finalRenderer ignores ticks and prints both tables at the end.
type finalRenderer struct {
	out io.Writer
}

func (f *finalRenderer) OnTick(sim.TickStatus, []sim.PatientRecord) {}

func (f *finalRenderer) OnComplete(result *sim.RunResult) {
	fmt.Fprintln(f.out, titleStyle.Render("Patients by Arrival"))
	fmt.Fprintln(f.out, RenderTable(result.Arrivals))
	writeRanked(f.out, result)
}
