package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// ExcelExporter writes a report to an xlsx workbook with one sheet per
// section.
type ExcelExporter struct {
	path string
}

func NewExcelExporter(path string) *ExcelExporter {
	return &ExcelExporter{path: path}
}

func (e *ExcelExporter) Handle(report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, section := range report.Sections {
		sheet := sheetName(section.Title)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		if err := writeSection(f, sheet, section); err != nil {
			return err
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSection(f *excelize.File, sheet string, section domain.ReportSection) error {
	headers := []interface{}{"Name", "Value", "Unit", "Description"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for row, detail := range section.Details {
		cells := []interface{}{detail.Name, detail.Value, detail.Unit, detail.Description}
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// sheetName trims a section title to the 31 characters excel allows.
func sheetName(title string) string {
	if len(title) > 31 {
		return title[:31]
	}
	return title
}
