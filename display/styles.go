// Package display renders a run to a terminal: the countdown, the live
// arrival table, and the final priority table.
package display

import "github.com/charmbracelet/lipgloss"

var (
	urgent    = lipgloss.Color("#FF3B30")
	standard  = lipgloss.Color("#FFB000")
	nonUrgent = lipgloss.Color("#00CC66")
	muted     = lipgloss.Color("#666666")
	white     = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(white)
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(standard)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(muted)
)

var priorityColors = map[int]lipgloss.Color{
	1: urgent,
	2: standard,
	3: nonUrgent,
}
