// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides what a single transcript line is: a timestamp,
// an end-of-block marker, or content carrying an optional bracketed title.
// All functions are pure and never fail; malformed input simply classifies
// as content.
package classify

import (
	"regexp"
	"strings"
)

// timePattern matches a bare clock value: 1-2 digit hour, 2-digit minute,
// optional 2-digit second. Values are not range-checked, so "25:99" counts
// as a timestamp and is carried verbatim into the output.
var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)

// titlePattern matches the first bracketed span on a line. Full-width and
// ASCII brackets are accepted on either side, so 【标题] and [标题】 both
// match.
var titlePattern = regexp.MustCompile(`[【\[](.*?)[\]】]`)

// endMarkers is the fixed vocabulary that terminates a content block.
var endMarkers = map[string]bool{
	"分享":     true,
	"转发":     true,
	"结束":     true,
	"------": true,
}

// IsTimestamp reports whether text, after trimming surrounding whitespace,
// is exactly a clock value.
func IsTimestamp(text string) bool {
	return timePattern.MatchString(strings.TrimSpace(text))
}

// IsEndMarker reports whether text, after trimming, equals one of the
// end-of-block markers. Matching is literal: no partial and no
// case-insensitive forms.
func IsEndMarker(text string) bool {
	return endMarkers[strings.TrimSpace(text)]
}

// SplitTitle lifts a bracketed title out of the first line of block. Only
// the first match on the first line is used; a second span like the [B] in
// "[A][B]" stays in the content, as does everything on later lines. The
// returned cleaned text is the block with the matched span removed and the
// whole string trimmed; the title is the trimmed interior of the span.
// Both results are empty when block is empty.
func SplitTitle(block string) (title, cleaned string) {
	if block == "" {
		return "", ""
	}
	lines := strings.Split(block, "\n")
	if m := titlePattern.FindStringSubmatchIndex(lines[0]); m != nil {
		title = strings.TrimSpace(lines[0][m[2]:m[3]])
		lines[0] = lines[0][:m[0]] + lines[0][m[1]:]
	}
	return title, strings.TrimSpace(strings.Join(lines, "\n"))
}
