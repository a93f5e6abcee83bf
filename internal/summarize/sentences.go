package summarize

import (
	"regexp"
	"strings"

	"github.com/hyperjump/clausewise/pkg/utils"
)

var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text after each '.', '!' or '?' that is followed by
// whitespace. Sentences are trimmed; empty ones are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	var out []string
	start := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		if s := strings.TrimSpace(text[start : loc[0]+1]); s != "" {
			out = append(out, s)
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		out = append(out, s)
	}
	return out
}

// substantive keeps sentences longer than minRunes characters.
func substantive(sentences []string, minRunes int) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if utils.RuneLen(s) > minRunes {
			out = append(out, s)
		}
	}
	return out
}
