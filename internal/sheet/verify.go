// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/timeslice/pkg/types"
)

// headRows caps how many records a Verification carries for display.
const headRows = 5

// Verification summarizes a read-back of the written workbook.
type Verification struct {
	// Total is the number of data rows (the header is not counted).
	Total int

	// Head holds up to the first five records.
	Head []types.Record

	// TimeCounts maps each time value to how many rows carry it.
	TimeCounts map[string]int
}

// Verify re-opens the workbook at path and summarizes its contents. It is
// purely diagnostic: a failure here reports a broken read-back, it never
// removes or rewrites the file.
func Verify(path string) (Verification, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Verification{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	active := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(active)
	if err != nil {
		return Verification{}, fmt.Errorf("reading sheet %s: %w", active, err)
	}

	v := Verification{TimeCounts: make(map[string]int)}
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec := types.Record{
			ID:      cellAt(row, 0),
			Time:    cellAt(row, 1),
			Title:   cellAt(row, 2),
			Content: cellAt(row, 3),
		}
		v.Total++
		if len(v.Head) < headRows {
			v.Head = append(v.Head, rec)
		}
		v.TimeCounts[rec.Time]++
	}
	return v, nil
}

// cellAt returns row[i], or "" when the row is shorter; trailing empty
// cells are elided by the reader.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
