// Package clauses splits a document into numbered clauses and classifies
// each one by type, risk level, key terms, obligations, dates, and parties.
package clauses

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/clausewise/internal/patterns"
)

type marker struct {
	start, end int
}

// Segment splits text at numbered-list markers and returns the trimmed
// segments that are at least the library's minimum clause length. Markers
// count at the start of a line, or inline after a sentence terminator. The
// marker text itself is dropped. Text before the first marker is a segment
// like any other.
func Segment(lib *patterns.Library, text string) []string {
	segments := []string{}
	if strings.TrimSpace(text) == "" {
		return segments
	}

	prev := 0
	for _, m := range findMarkers(lib, text) {
		segments = appendSegment(segments, text[prev:m.start], lib.Limits.MinClauseLength)
		prev = m.end
	}
	return appendSegment(segments, text[prev:], lib.Limits.MinClauseLength)
}

func appendSegment(segments []string, s string, minLen int) []string {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) < minLen {
		return segments
	}
	return append(segments, s)
}

func findMarkers(lib *patterns.Library, text string) []marker {
	var markers []marker
	for _, loc := range lib.SplitLineRegexp().FindAllStringIndex(text, -1) {
		markers = append(markers, marker{loc[0], loc[1]})
	}
	for _, loc := range lib.SplitInlineRegexp().FindAllStringSubmatchIndex(text, -1) {
		if loc[2] >= 0 {
			markers = append(markers, marker{loc[2], loc[3]})
		}
	}
	sort.Slice(markers, func(i, j int) bool { return markers[i].start < markers[j].start })

	// Drop markers that start inside an earlier one.
	out := markers[:0]
	end := -1
	for _, m := range markers {
		if m.start < end {
			continue
		}
		out = append(out, m)
		end = m.end
	}
	return out
}
