// Package export writes record lists as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of an .xlsx workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Column describes one sheet column
type Column struct {
	Header string
	Width  float64
}

// Sheet is a single-sheet table. Each row holds one value per column;
// values are written with excelize's type handling, so numbers stay numeric.
type Sheet struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// AddRow appends a row
func (s *Sheet) AddRow(values ...any) {
	s.Rows = append(s.Rows, values)
}

// WriteXLSX renders sheet as a workbook with a bold, frozen header row
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	name := sheet.Name
	if name == "" {
		name = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E0E7FF"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range sheet.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(name, cell, col.Header); err != nil {
			return err
		}
		if col.Width > 0 {
			letter, err := excelize.ColumnNumberToName(i + 1)
			if err != nil {
				return err
			}
			if err := f.SetColWidth(name, letter, letter, col.Width); err != nil {
				return err
			}
		}
	}
	if n := len(sheet.Columns); n > 0 {
		last, _ := excelize.CoordinatesToCellName(n, 1)
		if err := f.SetCellStyle(name, "A1", last, header); err != nil {
			return err
		}
		if err := f.SetPanes(name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}

	for r, row := range sheet.Rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return fmt.Errorf("failed to write %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
