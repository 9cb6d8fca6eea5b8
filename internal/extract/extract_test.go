// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/timeslice/pkg/types"
)

// feedAll runs rows through a fresh accumulator and returns the outcome.
func feedAll(rows []string) ([]types.Record, map[string]int) {
	acc := NewAccumulator(io.Discard)
	for _, r := range rows {
		acc.Feed(r)
	}
	return acc.Finish()
}

func TestAccumulator(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		wantRecords []types.Record
		wantCounts  map[string]int
	}{
		{
			name: "titled block then plain block",
			rows: []string{"9:00", "【Plan】Today", "do X", "------", "10:30", "do Y"},
			wantRecords: []types.Record{
				{ID: "9:00", Time: "9:00", Title: "Plan", Content: "Today\ndo X"},
				{ID: "10:30", Time: "10:30", Title: "", Content: "do Y"},
			},
			wantCounts: map[string]int{"9:00": 1, "10:30": 1},
		},
		{
			name: "duplicate timestamps stay separate records",
			rows: []string{"12:00", "a", "12:00", "b"},
			wantRecords: []types.Record{
				{ID: "12:00", Time: "12:00", Content: "a"},
				{ID: "12:00", Time: "12:00", Content: "b"},
			},
			wantCounts: map[string]int{"12:00": 2},
		},
		{
			name: "marker clears the buffer but keeps the timestamp",
			rows: []string{"12:00", "a", "结束", "b"},
			wantRecords: []types.Record{
				{ID: "12:00", Time: "12:00", Content: "a"},
				{ID: "12:00", Time: "12:00", Content: "b"},
			},
			wantCounts: map[string]int{"12:00": 2},
		},
		{
			name:        "timestamp followed by blanks yields nothing",
			rows:        []string{"12:00", "", "   ", ""},
			wantRecords: nil,
			wantCounts:  map[string]int{},
		},
		{
			name:        "content before the first timestamp is dropped",
			rows:        []string{"orphan line", "9:00", "kept"},
			wantRecords: []types.Record{{ID: "9:00", Time: "9:00", Content: "kept"}},
			wantCounts:  map[string]int{"9:00": 1},
		},
		{
			name:        "marker before any timestamp is a no-op",
			rows:        []string{"结束", "9:00", "x"},
			wantRecords: []types.Record{{ID: "9:00", Time: "9:00", Content: "x"}},
			wantCounts:  map[string]int{"9:00": 1},
		},
		{
			name:        "title-only block cleans to empty and is discarded",
			rows:        []string{"9:00", "【只有标题】", "10:00", "body"},
			wantRecords: []types.Record{{ID: "10:00", Time: "10:00", Content: "body"}},
			wantCounts:  map[string]int{"10:00": 1},
		},
		{
			name:        "lines are trimmed before buffering",
			rows:        []string{"9:00", "  padded  ", "\ttabbed\t"},
			wantRecords: []types.Record{{ID: "9:00", Time: "9:00", Content: "padded\ntabbed"}},
			wantCounts:  map[string]int{"9:00": 1},
		},
		{
			name:        "out-of-range clock value is still a timestamp",
			rows:        []string{"25:99", "x"},
			wantRecords: []types.Record{{ID: "25:99", Time: "25:99", Content: "x"}},
			wantCounts:  map[string]int{"25:99": 1},
		},
		{
			name:        "empty input",
			rows:        nil,
			wantRecords: nil,
			wantCounts:  map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, counts := feedAll(tt.rows)
			if !reflect.DeepEqual(records, tt.wantRecords) {
				t.Errorf("records = %+v, want %+v", records, tt.wantRecords)
			}
			if !reflect.DeepEqual(counts, tt.wantCounts) {
				t.Errorf("counts = %v, want %v", counts, tt.wantCounts)
			}
		})
	}
}

func TestAccumulatorDeterministic(t *testing.T) {
	rows := []string{"9:00", "【Plan】Today", "do X", "------", "10:30", "do Y"}
	first, _ := feedAll(rows)
	second, _ := feedAll(rows)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ: %+v vs %+v", first, second)
	}
}

func TestAccumulatorTrace(t *testing.T) {
	var buf bytes.Buffer
	acc := NewAccumulator(&buf)
	for _, r := range []string{"9:00", "hello", "结束", "orphan-free"} {
		acc.Feed(r)
	}
	acc.Finish()

	out := buf.String()
	for _, want := range []string{
		"行 1: [9:00] → 识别为时间",
		"行 2: [hello] → 添加到内容",
		"行 3: [结束] → 识别为结束标记",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q in:\n%s", want, out)
		}
	}
}

func TestTraceTruncatesLongValues(t *testing.T) {
	var buf bytes.Buffer
	acc := NewAccumulator(&buf)
	acc.Feed("9:00")
	acc.Feed(strings.Repeat("长", 40))

	want := "[" + strings.Repeat("长", 30) + "...]"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("trace does not truncate to 30 runes:\n%s", buf.String())
	}
}

// --- Run with mock collaborators ---

type mockSource struct {
	rows []string
	err  error
}

func (m mockSource) ReadFirstColumn(string) ([]string, error) {
	return m.rows, m.err
}

type mockSink struct {
	path    string
	records []types.Record
	err     error
	calls   int
}

func (m *mockSink) WriteRecords(path string, records []types.Record) error {
	m.calls++
	m.path = path
	m.records = records
	return m.err
}

func TestRun(t *testing.T) {
	src := mockSource{rows: []string{"9:00", "a", "9:00", "b", "11:15", "c"}}
	sink := &mockSink{}

	summary, err := Run(src, sink, "in.xlsx", "out.xlsx", io.Discard)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Records != 3 {
		t.Errorf("Records = %d, want 3", summary.Records)
	}
	if sink.calls != 1 || len(sink.records) != 3 || sink.path != "out.xlsx" {
		t.Errorf("sink got %d calls, %d records at %q", sink.calls, len(sink.records), sink.path)
	}
	if !reflect.DeepEqual(summary.Duplicates, []string{"9:00"}) {
		t.Errorf("Duplicates = %v, want [9:00]", summary.Duplicates)
	}
	if summary.Counts["9:00"] != 2 || summary.Counts["11:15"] != 1 {
		t.Errorf("Counts = %v", summary.Counts)
	}
}

func TestRunNoRecords(t *testing.T) {
	src := mockSource{rows: []string{"no timestamps", "just noise"}}
	sink := &mockSink{}

	summary, err := Run(src, sink, "in.xlsx", "out.xlsx", io.Discard)
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
	if sink.calls != 0 {
		t.Errorf("sink was called %d times for an empty run", sink.calls)
	}
	if summary.Records != 0 {
		t.Errorf("Records = %d, want 0", summary.Records)
	}
}

func TestRunReadFailure(t *testing.T) {
	readErr := fmt.Errorf("corrupt workbook")
	sink := &mockSink{}

	summary, err := Run(mockSource{err: readErr}, sink, "in.xlsx", "out.xlsx", io.Discard)
	if !errors.Is(err, readErr) {
		t.Fatalf("err = %v, want wrapped read error", err)
	}
	if sink.calls != 0 {
		t.Errorf("sink was called after a read failure")
	}
	// The run report for a failed read still names both files.
	if summary.Input != "in.xlsx" || summary.Output != "out.xlsx" {
		t.Errorf("failure summary lost its paths: %+v", summary)
	}
}

func TestRunWriteFailure(t *testing.T) {
	writeErr := fmt.Errorf("disk full")
	src := mockSource{rows: []string{"9:00", "a"}}

	_, err := Run(src, &mockSink{err: writeErr}, "in.xlsx", "out.xlsx", io.Discard)
	if !errors.Is(err, writeErr) {
		t.Fatalf("err = %v, want wrapped write error", err)
	}
}
