// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/timeslice/pkg/types"
)

// outSheet is the sheet a new workbook is created with.
const outSheet = "Sheet1"

// Header is the fixed four-column output header.
var Header = []string{"ID", "时间", "标题", "内容"}

// Writer writes extracted records into a new workbook.
type Writer struct{}

// WriteRecords creates a new workbook at path with the header row followed
// by one row per record, in the order given. Every cell is written as a
// string, including the timestamp columns, so a later read returns the
// values byte for byte; there is no index column.
func (Writer) WriteRecords(path string, records []types.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(outSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		row := []any{r.ID, r.Time, r.Title, r.Content}
		if err := f.SetSheetRow(outSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
