// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/timeslice/pkg/types"
)

// RowSource reads the ordered first-column values of a workbook's active
// sheet. Implemented by sheet.Reader; tests supply their own.
type RowSource interface {
	ReadFirstColumn(path string) ([]string, error)
}

// RecordSink writes finalized records as a four-column table to a new
// workbook. Implemented by sheet.Writer.
type RecordSink interface {
	WriteRecords(path string, records []types.Record) error
}

// Summary describes one completed extraction run.
type Summary struct {
	Input   string
	Output  string
	Records int

	// Counts maps each timestamp to the number of records finalized
	// under it. Duplicate timestamps stay separate records; the counts
	// exist only for the duplicate diagnostic.
	Counts map[string]int

	// Duplicates lists, sorted, the timestamps with more than one record.
	Duplicates []string
}

// Run reads every row from input, folds them into records, and writes the
// result to output. The trace writer receives the per-row classification
// diagnostic. When nothing is extracted it returns the summary together
// with ErrNoRecords and leaves no output file behind; read and write
// failures abort the run with the underlying error wrapped.
func Run(src RowSource, sink RecordSink, input, output string, trace io.Writer) (Summary, error) {
	rows, err := src.ReadFirstColumn(input)
	if err != nil {
		// Keep the paths in the summary so a failed run's report still
		// says which files were involved.
		return Summary{Input: input, Output: output}, fmt.Errorf("reading workbook %s: %w", input, err)
	}

	acc := NewAccumulator(trace)
	for _, v := range rows {
		acc.Feed(v)
	}
	records, counts := acc.Finish()

	summary := Summary{
		Input:      input,
		Output:     output,
		Records:    len(records),
		Counts:     counts,
		Duplicates: duplicates(counts),
	}

	if len(records) == 0 {
		return summary, ErrNoRecords
	}

	if err := sink.WriteRecords(output, records); err != nil {
		return summary, fmt.Errorf("writing workbook %s: %w", output, err)
	}
	return summary, nil
}

// duplicates returns the timestamps that finalized more than one record,
// sorted so diagnostics are stable across runs.
func duplicates(counts map[string]int) []string {
	var dup []string
	for ts, n := range counts {
		if n > 1 {
			dup = append(dup, ts)
		}
	}
	sort.Strings(dup)
	return dup
}
