// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract folds classified transcript lines into finalized records.
// The Accumulator is the stage with the actual decision logic; workbook
// reading and writing are delegated to collaborators behind the RowSource
// and RecordSink interfaces.
package extract

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/timeslice/internal/classify"
	"github.com/pdiddy/timeslice/pkg/types"
)

// ErrNoRecords reports that a run finished without extracting a single
// record. It is an outcome, not an I/O failure: the input was readable but
// contained no timestamped content, and no output file is written.
var ErrNoRecords = errors.New("no records extracted")

// Accumulator walks transcript lines in source order and folds them into
// records. Construct a fresh one per run: it owns the in-progress buffer
// and the current-timestamp pointer, and nothing survives across runs.
type Accumulator struct {
	trace io.Writer

	// currentTime is the timestamp the buffer accumulates under; ""
	// means no timestamp has been seen yet.
	currentTime string
	buffer      []string

	records []types.Record
	counts  map[string]int
	row     int
}

// NewAccumulator returns an empty accumulator that writes its per-row
// classification trace to w. Pass io.Discard (or nil) to silence it.
func NewAccumulator(w io.Writer) *Accumulator {
	if w == nil {
		w = io.Discard
	}
	return &Accumulator{trace: w, counts: make(map[string]int)}
}

// Feed classifies one cell value and advances the state machine. Exactly
// one branch fires per call, checked in priority order: timestamp, blank,
// end marker, content.
func (a *Accumulator) Feed(value string) {
	a.row++
	text := strings.TrimSpace(value)

	if classify.IsTimestamp(text) {
		a.finalize()
		a.currentTime = text
		a.buffer = nil
		a.tracef(text, "识别为时间")
		return
	}
	if text == "" {
		return
	}
	if classify.IsEndMarker(text) {
		// A marker closes the block but keeps the timestamp: content
		// after it still belongs to the same clock value.
		a.finalize()
		a.buffer = nil
		a.tracef(text, "识别为结束标记")
		return
	}
	if a.currentTime == "" {
		// Content ahead of the first timestamp can never become a
		// record. Drop it here, explicitly, rather than buffering it
		// and relying on finalize's timestamp precondition.
		a.tracef(text, "丢弃（尚无时间标记）")
		return
	}
	a.buffer = append(a.buffer, text)
	a.tracef(text, "添加到内容")
}

// Finish flushes the trailing block and returns the run's records in
// finalize order together with the per-timestamp counts.
func (a *Accumulator) Finish() ([]types.Record, map[string]int) {
	a.finalize()
	a.buffer = nil
	return a.records, a.counts
}

// finalize converts the buffered lines into a record. It is a no-op unless
// a timestamp is set and the buffer is non-empty; blocks whose cleaned
// content is empty are discarded without a record or a count.
func (a *Accumulator) finalize() {
	if a.currentTime == "" || len(a.buffer) == 0 {
		return
	}
	title, content := classify.SplitTitle(strings.Join(a.buffer, "\n"))
	if content == "" {
		return
	}
	a.records = append(a.records, types.Record{
		ID:      a.currentTime,
		Time:    a.currentTime,
		Title:   title,
		Content: content,
	})
	a.counts[a.currentTime]++
}

func (a *Accumulator) tracef(text, verdict string) {
	fmt.Fprintf(a.trace, "行 %d: [%s] → %s\n", a.row, truncate(text, 30), verdict)
}

// truncate shortens s to at most n runes for the trace. Transcripts are
// CJK-heavy, so this counts runes, not bytes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
