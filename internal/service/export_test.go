package service_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/AmrrSalem/dsnd-dashboard-project/internal/database/models"
	"github.com/AmrrSalem/dsnd-dashboard-project/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *service.ReportResponse {
	events := []models.EventCount{
		{EventDate: day(time.January, 1), PositiveEvents: 2},
		{EventDate: day(time.January, 3), NegativeEvents: 1},
	}
	return &service.ReportResponse{
		Subject:    models.SubjectEmployee,
		ID:         1,
		Name:       "Ada Lovelace",
		Events:     events,
		Cumulative: service.CumulativeSeries(events),
		Notes:      []models.NoteEntry{{NoteDate: day(time.January, 2), Note: "Missed standup"}},
		Risk:       &service.RiskResponse{Subject: models.SubjectEmployee, ID: 1, Probability: 0.125, Available: true, Rows: 1},
	}
}

func TestWorkbookSheets(t *testing.T) {
	f, err := service.NewExportService().Workbook(context.Background(), sampleReport())
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{service.SheetSummary, service.SheetEvents, service.SheetNotes}, f.GetSheetList())

	summary, err := f.GetRows(service.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Ada Lovelace"}, summary[1])
	assert.Equal(t, []string{"Subject", "Employee"}, summary[2])
	assert.Equal(t, []string{"Recruitment risk", "0.1250"}, summary[4])

	events, err := f.GetRows(service.SheetEvents)
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, []string{"2024-01-01", "2", "0", "2", "0"}, events[1])
	assert.Equal(t, []string{"2024-01-02", "0", "0", "2", "0"}, events[2])
	assert.Equal(t, []string{"2024-01-03", "0", "1", "2", "1"}, events[3])

	notes, err := f.GetRows(service.SheetNotes)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Date", "Note"}, {"2024-01-02", "Missed standup"}}, notes)
}

func TestWorkbookUnavailableRisk(t *testing.T) {
	report := &service.ReportResponse{
		Subject: models.SubjectTeam,
		ID:      7,
		Risk:    &service.RiskResponse{Subject: models.SubjectTeam, ID: 7},
	}

	f, err := service.NewExportService().Workbook(context.Background(), report)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(service.SheetSummary, "B5")
	require.NoError(t, err)
	assert.Equal(t, "no prediction available", value)

	events, err := f.GetRows(service.SheetEvents)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestWriteXLSXProducesReadableWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, service.NewExportService().WriteXLSX(context.Background(), &buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(service.SheetSummary, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)
}

func TestWorkbookNilReport(t *testing.T) {
	_, err := service.NewExportService().Workbook(context.Background(), nil)
	assert.Error(t, err)
}
