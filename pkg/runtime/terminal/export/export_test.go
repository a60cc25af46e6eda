package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

func sampleReport() *domain.Report {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Report{
		ID:          "test-report",
		Title:       "Analysis Report (test)",
		GeneratedAt: start,
		Period:      domain.TimePeriod{Start: start, End: start.AddDate(0, 0, 9), Duration: 9},
		Rows:        10,
		Sections: []domain.ReportSection{
			{
				Title: "Dataset",
				Summary: map[string]interface{}{
					"Rows": 10,
					"Seed": int64(42),
				},
			},
			{
				Title: "Category Breakdown",
				Details: []domain.ReportDetail{
					{Name: "A", Value: 6, Unit: "records", Description: "share 60.0%"},
					{Name: "B", Value: 4, Unit: "records", Description: "share 40.0%"},
				},
			},
			{
				Title: "Key Insights",
				Details: []domain.ReportDetail{
					{Name: "#1", Value: "Most frequent category: A (60.0% of records)"},
				},
			},
		},
	}
}

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "Analysis Report (test) (9 days)")
	assert.Contains(t, out, "Report ID: test-report")
	assert.Contains(t, out, "=== Category Breakdown ===")
	assert.Contains(t, out, "Rows: 10")
	assert.Contains(t, out, "Most frequent category: A (60.0% of records)")
}

func TestCSVExporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter(&buf).Handle(sampleReport()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per section detail.
	require.Len(t, records, 4)
	assert.Equal(t, []string{"section", "name", "value", "unit", "description"}, records[0])
	assert.Equal(t, []string{"Category Breakdown", "A", "6", "records", "share 60.0%"}, records[1])
	assert.Equal(t, "Key Insights", records[3][0])
}

func TestExcelExporter_Handle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, NewExcelExporter(path).Handle(sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Dataset", "Category Breakdown", "Key Insights"}, f.GetSheetList())

	name, err := f.GetCellValue("Category Breakdown", "A2")
	require.NoError(t, err)
	assert.Equal(t, "A", name)

	count, err := f.GetCellValue("Category Breakdown", "B3")
	require.NoError(t, err)
	assert.Equal(t, "4", count)

	statement, err := f.GetCellValue("Key Insights", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Most frequent category: A (60.0% of records)", statement)
}
