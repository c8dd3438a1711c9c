package display

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"github.com/edsim/edsim/sim"
)

// ProgressRenderer shows the countdown as a progress bar on one writer and
// prints both tables to another when the run ends.
type ProgressRenderer struct {
	out    io.Writer
	barOut io.Writer
	bar    *progressbar.ProgressBar
}

// NewProgressRenderer draws the bar on barOut (typically stderr) and the
// final tables on out.
func NewProgressRenderer(out, barOut io.Writer) *ProgressRenderer {
	return &ProgressRenderer{out: out, barOut: barOut}
}

func (p *ProgressRenderer) OnTick(status sim.TickStatus, records []sim.PatientRecord) {
	if p.bar == nil {
		p.bar = newCountdownBar(p.barOut, status.Duration)
	}
	p.bar.Describe(fmt.Sprintf("%s, %d patients", StatusLine(status.Remaining), len(records)))
	_ = p.bar.Set(status.Tick + 1)
}

func (p *ProgressRenderer) OnComplete(result *sim.RunResult) {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
	fmt.Fprintln(p.out, statusStyle.Render(EndedMessage))
	fmt.Fprintln(p.out, RenderTable(result.Arrivals))
	writeRanked(p.out, result)
}

func newCountdownBar(w io.Writer, duration int) *progressbar.ProgressBar {
	return progressbar.NewOptions(duration,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(StatusLine(duration)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "",
			BarEnd:        "",
		}),
		progressbar.OptionClearOnFinish(),
	)
}
