// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data and configuration types shared across
// timeslice stages.
package types

// Record is one finalized content block from a transcript: the timestamp
// line that opened it, an optional bracketed title lifted from its first
// content line, and the remaining content. ID always equals Time (the raw
// timestamp text, kept verbatim); Content is never empty for a stored
// Record, blocks that clean down to nothing are discarded before they get
// here.
type Record struct {
	ID      string `json:"id" yaml:"id"`
	Time    string `json:"time" yaml:"time"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}
