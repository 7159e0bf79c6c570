package export

import (
	"fmt"

	"github.com/Silvia-9/taskflow-canvas/internal/tabular"
	"github.com/xuri/excelize/v2"
)

// colWidthPadding is added to each computed column width so cell content
// does not touch the column edge.
const colWidthPadding = 2.0

// ExcelWriter serializes flattened tables into .xlsx workbooks.
type ExcelWriter struct{}

func NewExcelWriter() *ExcelWriter { return &ExcelWriter{} }

func (w *ExcelWriter) Ext() string { return ".xlsx" }

// WriteTable writes the table onto a single sheet: bold header row, one row
// per flattened record, column widths from the table's computed widths.
func (w *ExcelWriter) WriteTable(path, sheet string, table tabular.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %q: %w", sheet, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9D9D9"}},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for col, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("addressing header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header %q: %w", h, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("styling header %q: %w", h, err)
		}
	}

	for r, row := range table.Rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("addressing cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("writing row %d: %w", r+1, err)
			}
		}
	}

	for col, width := range table.Widths() {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("naming column %d: %w", col+1, err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)+colWidthPadding); err != nil {
			return fmt.Errorf("sizing column %s: %w", name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
