package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edsim/edsim/display"
	"github.com/edsim/edsim/sim"
)

// Sheet names used in XLSX exports.
const (
	SheetArrivals = "Arrivals"
	SheetRanked   = "By Priority"
	SheetSummary  = "Summary"
)

// WriteXLSX writes one sheet per view plus a summary sheet.
func WriteXLSX(path string, result *sim.RunResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetArrivals); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	for _, v := range views(result) {
		if v.sheet != SheetArrivals {
			if _, err := f.NewSheet(v.sheet); err != nil {
				return fmt.Errorf("creating sheet %q: %w", v.sheet, err)
			}
		}
		if err := writeRecordSheet(f, v.sheet, v.records); err != nil {
			return err
		}
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRecordSheet(f *excelize.File, sheet string, records []sim.PatientRecord) error {
	for col, h := range display.Headers {
		if err := setCell(f, sheet, col+1, 1, h); err != nil {
			return err
		}
	}
	for i, r := range records {
		row := []int{r.ID, r.InterArrival, r.ArrivalTime, r.ServiceTime, int(r.Priority)}
		for col, v := range row {
			if err := setCell(f, sheet, col+1, i+2, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result *sim.RunResult) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("creating sheet %q: %w", SheetSummary, err)
	}
	s := result.Summary
	rows := [][2]interface{}{
		{"Run ID", result.RunID},
		{"Seed", result.Config.Seed},
		{"Duration (s)", result.Config.Duration},
		{"Arrival Rate", result.Config.ArrivalRate},
		{"Service Rate", result.Config.ServiceRate},
		{"Patients", s.Patients},
		{"Urgent", s.ByPriority[sim.PriorityUrgent]},
		{"Standard", s.ByPriority[sim.PriorityStandard]},
		{"Non-Urgent", s.ByPriority[sim.PriorityNonUrgent]},
		{"Mean Inter-Arrival", s.MeanInterArrival},
		{"Mean Service Time", s.MeanServiceTime},
		{"Last Arrival", s.LastArrival},
	}
	for i, kv := range rows {
		if err := setCell(f, SheetSummary, 1, i+1, kv[0]); err != nil {
			return err
		}
		if err := setCell(f, SheetSummary, 2, i+1, kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
	}
	return nil
}
