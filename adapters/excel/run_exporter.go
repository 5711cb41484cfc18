// Package excel exports simulation runs to .xlsx workbooks: a summary sheet
// with the run record and a samples sheet with the convergence path.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gomonte/domain/run"
	"gomonte/internal/errors"
)

const (
	summarySheet = "Summary"
	samplesSheet = "Samples"
)

// RunExporter implements ports.RunExporter using excelize
type RunExporter struct{}

// NewRunExporter creates a new Excel run exporter
func NewRunExporter() *RunExporter {
	return &RunExporter{}
}

// Export writes the run record and its convergence path to path as an
// .xlsx workbook.
func (e *RunExporter) Export(rec *run.Run, samples []run.Sample, path string) error {
	if rec == nil {
		return errors.InvalidArgument("run must not be nil")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return errors.Wrap(err, "failed to create summary sheet")
	}

	summary := [][]interface{}{
		{"Run ID", rec.ID.String()},
		{"Scenario", rec.Scenario},
		{"Seed", rec.Seed},
		{"Samples", rec.Samples},
		{"Successes", rec.Successes},
		{"Estimate", rec.Estimate},
		{"Target", rec.Target},
		{"Status", string(rec.Status)},
		{"Created At", rec.CreatedAt.Format("2006-01-02 15:04:05 MST")},
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write summary row")
		}
	}

	if _, err := f.NewSheet(samplesSheet); err != nil {
		return errors.Wrap(err, "failed to create samples sheet")
	}

	header := []interface{}{"Sample Size", "Successes", "Estimate"}
	if err := f.SetSheetRow(samplesSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write samples header")
	}
	for i, s := range samples {
		row := []interface{}{s.SampleSize, s.Successes, s.Estimate}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(samplesSheet, cell, &row); err != nil {
			return errors.Wrap(err, "failed to write sample row")
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook to %s", path)
	}
	return nil
}
