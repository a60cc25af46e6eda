package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// CSVExporter writes every report table to a single CSV stream, one row
// per section detail, with the section title in the first column.
type CSVExporter struct {
	writer io.Writer
}

func NewCSVExporter(writer io.Writer) *CSVExporter {
	return &CSVExporter{writer: writer}
}

func (e *CSVExporter) Handle(report *domain.Report) error {
	w := csv.NewWriter(e.writer)

	if err := w.Write([]string{"section", "name", "value", "unit", "description"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, section := range report.Sections {
		for _, detail := range section.Details {
			row := []string{
				section.Title,
				detail.Name,
				fmt.Sprintf("%v", detail.Value),
				detail.Unit,
				detail.Description,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}
