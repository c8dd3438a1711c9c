// Package export writes a finished run to disk so it can be inspected
// outside the terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/display"
	"github.com/edsim/edsim/sim"
)

// Format is an output file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export extension %q; valid: .json, .csv, .xlsx", filepath.Ext(path))
	}
}

// WriteFile exports result to path in the format implied by its extension.
func WriteFile(path string, result *sim.RunResult) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		if err := WriteXLSX(path, result); err != nil {
			return err
		}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		switch format {
		case FormatJSON:
			err = WriteJSON(f, result)
		case FormatCSV:
			err = WriteCSV(f, result)
		}
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil {
				logrus.Warnf("Could not remove partial export %s: %v", path, rerr)
			}
			return err
		}
	}
	logrus.WithField("run_id", result.RunID).Infof("Exported %d patients to %s", len(result.Arrivals), path)
	return nil
}

// WriteJSON writes the full run result as indented JSON.
func WriteJSON(w io.Writer, result *sim.RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding run as JSON: %w", err)
	}
	return nil
}

// WriteCSV writes both views as one table with a leading "view" column
// ("arrival" or "priority") followed by the display columns.
func WriteCSV(w io.Writer, result *sim.RunResult) error {
	cw := csv.NewWriter(w)
	header := append([]string{"View"}, display.Headers...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, v := range views(result) {
		for _, r := range v.records {
			if err := cw.Write(append([]string{v.name}, display.Row(r)...)); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

type view struct {
	name    string
	sheet   string
	records []sim.PatientRecord
}

func views(result *sim.RunResult) []view {
	return []view{
		{name: "arrival", sheet: SheetArrivals, records: result.Arrivals},
		{name: "priority", sheet: SheetRanked, records: result.Ranked},
	}
}
