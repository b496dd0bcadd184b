package service

import (
	"context"
	"fmt"
	"io"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/logger"

	"github.com/xuri/excelize/v2"
)

// Sheet names of an exported report
const (
	SheetSummary = "Summary"
	SheetEvents  = "Events"
	SheetNotes   = "Notes"
)

// ExportService renders reports as spreadsheets
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// Workbook builds an in-memory workbook for report. The caller closes it.
func (s *ExportService) Workbook(ctx context.Context, report *ReportResponse) (*excelize.File, error) {
	if report == nil {
		return nil, fmt.Errorf("export: nil report")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	for _, name := range []string{SheetEvents, SheetNotes} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummary(f, header, report); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeEvents(f, header, report); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeNotes(f, header, report); err != nil {
		f.Close()
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"subject": string(report.Subject),
		"id":      report.ID,
		"events":  len(report.Events),
		"notes":   len(report.Notes),
	}).Debug("report workbook built")

	return f, nil
}

// WriteXLSX streams the workbook for report to w
func (s *ExportService) WriteXLSX(ctx context.Context, w io.Writer, report *ReportResponse) error {
	f, err := s.Workbook(ctx, report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSummary(f *excelize.File, header int, report *ReportResponse) error {
	risk := "no prediction available"
	if report.Risk != nil && report.Risk.Available {
		risk = fmt.Sprintf("%.4f", report.Risk.Probability)
	}

	rows := [][]interface{}{
		{"Field", "Value"},
		{"Name", report.Name},
		{"Subject", report.Subject.Title()},
		{"ID", report.ID},
		{"Recruitment risk", risk},
	}
	if err := writeRows(f, SheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "B1", header); err != nil {
		return fmt.Errorf("style %s: %w", SheetSummary, err)
	}
	return f.SetColWidth(SheetSummary, "A", "B", 24)
}

func writeEvents(f *excelize.File, header int, report *ReportResponse) error {
	rows := [][]interface{}{
		{"Date", "Positive", "Negative", "Cumulative positive", "Cumulative negative"},
	}

	// the cumulative series covers every day; raw counts only days with events
	perDay := make(map[string][2]int64, len(report.Events))
	for _, e := range report.Events {
		perDay[e.EventDate.String()] = [2]int64{e.PositiveEvents, e.NegativeEvents}
	}
	for _, point := range report.Cumulative {
		day := perDay[point.Date.String()]
		rows = append(rows, []interface{}{point.Date.String(), day[0], day[1], point.Positive, point.Negative})
	}

	if err := writeRows(f, SheetEvents, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetEvents, "A1", "E1", header); err != nil {
		return fmt.Errorf("style %s: %w", SheetEvents, err)
	}
	return f.SetColWidth(SheetEvents, "A", "E", 20)
}

func writeNotes(f *excelize.File, header int, report *ReportResponse) error {
	rows := [][]interface{}{{"Date", "Note"}}
	for _, n := range report.Notes {
		rows = append(rows, []interface{}{n.NoteDate.String(), n.Note})
	}

	if err := writeRows(f, SheetNotes, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetNotes, "A1", "B1", header); err != nil {
		return fmt.Errorf("style %s: %w", SheetNotes, err)
	}
	if err := f.SetColWidth(SheetNotes, "A", "A", 14); err != nil {
		return fmt.Errorf("width %s: %w", SheetNotes, err)
	}
	return f.SetColWidth(SheetNotes, "B", "B", 80)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
