package display

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/edsim/edsim/sim"
)

// Headers are the column titles of every patient table.
var Headers = []string{"ID", "Inter-Arrival", "Arrival Time", "Service Time", "Priority"}

// EmptyMessage replaces the table while no patient has arrived.
const EmptyMessage = "No patients generated yet."

// Row formats one record in Headers order.
func Row(r sim.PatientRecord) []string {
	return []string{
		strconv.Itoa(r.ID),
		strconv.Itoa(r.InterArrival),
		strconv.Itoa(r.ArrivalTime),
		strconv.Itoa(r.ServiceTime),
		strconv.Itoa(int(r.Priority)),
	}
}

// RenderTable draws records as a bordered table, or EmptyMessage when there
// are none. The priority column is colored by class.
func RenderTable(records []sim.PatientRecord) string {
	if len(records) == 0 {
		return mutedStyle.Render(EmptyMessage)
	}
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = Row(r)
	}
	priorityCol := len(Headers) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == priorityCol && row >= 0 && row < len(records) {
				if c, ok := priorityColors[int(records[row].Priority)]; ok {
					return cellStyle.Foreground(c)
				}
			}
			return cellStyle
		})
	return t.String()
}
