package export

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/pdfoutline/model"
)

// OutlineSheet is the worksheet written by WriteXLSX.
const OutlineSheet = "Outline"

// xlsxHeaders are the column titles of the outline table, which starts on
// the third row below the document title.
var xlsxHeaders = []string{"Level", "Text", "Page"}

// WriteXLSX writes a workbook with the title in the first row and one
// row per heading below a header row.
func WriteXLSX(w io.Writer, result *model.AnalysisResult) error {
	result = record(result)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), OutlineSheet); err != nil {
		return fmt.Errorf("xlsx sheet: %w", err)
	}

	if err := setCell(f, 1, 1, "Title"); err != nil {
		return err
	}
	if err := setCell(f, 2, 1, result.Title); err != nil {
		return err
	}

	for i, h := range xlsxHeaders {
		if err := setCell(f, i+1, 3, h); err != nil {
			return err
		}
	}

	row := 4
	for _, h := range result.Outline {
		for col, v := range []any{h.Level.String(), h.Text, h.Page} {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}
		row++
	}

	for col, width := range map[string]float64{"A": 10, "B": 80, "C": 8} {
		if err := f.SetColWidth(OutlineSheet, col, col, width); err != nil {
			return fmt.Errorf("xlsx column %s: %w", col, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// setCell writes v into the cell at col, row. Text longer than a cell can
// hold is an error rather than being cut short.
func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx cell: %w", err)
	}
	if s, ok := v.(string); ok && utf8.RuneCountInString(s) > excelize.TotalCellChars {
		return fmt.Errorf("xlsx cell %s: %w", cell, excelize.ErrCellCharsLength)
	}
	if err := f.SetCellValue(OutlineSheet, cell, v); err != nil {
		return fmt.Errorf("xlsx cell %s: %w", cell, err)
	}
	return nil
}

// ReadXLSX reads back a workbook written by WriteXLSX.
func ReadXLSX(r io.Reader) (*model.AnalysisResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx open: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(OutlineSheet)
	if err != nil {
		return nil, fmt.Errorf("xlsx rows: %w", err)
	}

	result := model.NewAnalysisResult("", nil)
	if len(rows) > 0 && len(rows[0]) > 1 {
		result.Title = rows[0][1]
	}

	for i := 3; i < len(rows); i++ {
		cols := rows[i]
		if len(cols) < 3 {
			return nil, fmt.Errorf("xlsx row %d: expected 3 columns, got %d", i+1, len(cols))
		}
		level, err := model.ParseHeadingLevel(cols[0])
		if err != nil {
			return nil, fmt.Errorf("xlsx row %d: %w", i+1, err)
		}
		var page int
		if _, err := fmt.Sscanf(cols[2], "%d", &page); err != nil {
			return nil, fmt.Errorf("xlsx row %d: invalid page %q", i+1, cols[2])
		}
		result.Outline = append(result.Outline, model.Heading{Level: level, Text: cols[1], Page: page})
	}

	return result, nil
}
