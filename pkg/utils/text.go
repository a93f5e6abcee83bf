// Package utils provides shared utilities for text, math, and logging.
package utils

import (
	"strings"
	"unicode/utf8"
)

// Truncate returns s truncated to maxLen bytes, with "..." appended if truncated.
// The cut never splits a UTF-8 sequence. If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// ContextWindow returns the match text[start:end] with up to radius runes on
// each side, clipped to the text bounds and trimmed. start and end are byte
// offsets of the match.
func ContextWindow(text string, start, end, radius int) string {
	from := start
	for i := 0; i < radius && from > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:from])
		from -= size
	}
	to := end
	for i := 0; i < radius && to < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[to:])
		to += size
	}
	return strings.TrimSpace(text[from:to])
}

// RuneIndex converts byte offsets of one string into rune offsets. Lookups
// in increasing order cost only the distance from the previous one.
type RuneIndex struct {
	s       string
	byteOff int
	runeOff int
}

// NewRuneIndex returns a RuneIndex over s.
func NewRuneIndex(s string) *RuneIndex {
	return &RuneIndex{s: s}
}

// Offset returns the rune offset of byte offset b.
func (x *RuneIndex) Offset(b int) int {
	if b < x.byteOff {
		x.byteOff, x.runeOff = 0, 0
	}
	x.runeOff += utf8.RuneCountInString(x.s[x.byteOff:b])
	x.byteOff = b
	return x.runeOff
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateRunes returns at most n runes of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
