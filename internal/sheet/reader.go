// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sheet is the workbook boundary: it reads transcript rows out of
// an existing xlsx file, writes extracted records into a new one, and
// re-reads the result for the post-write verification. All decision logic
// lives elsewhere; this package only moves cells.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Reader reads the first column of a workbook's active sheet.
type Reader struct{}

// ReadFirstColumn returns the first cell of every row of the active sheet,
// in sheet order. Rows with no cells contribute an empty string. Cells are
// returned as raw strings, so numeric or date cells arrive in their
// underlying textual form and classification never sees a formatted value.
func (Reader) ReadFirstColumn(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	active := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(active, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", active, err)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			values = append(values, "")
			continue
		}
		values = append(values, row[0])
	}
	return values, nil
}
