// Package normalize cleans raw extracted document text before analysis.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	newlineRun  = regexp.MustCompile(`\n+`)
	spaceRun    = regexp.MustCompile(` +`)
	pageFooter  = regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`)
	pageNumber  = regexp.MustCompile(`(?m)^\d+\s*$`)
	ellipsisRun = regexp.MustCompile(`\.{3,}`)
	hyphenRun   = regexp.MustCompile(`-{3,}`)
	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalize applies the cleanup rules in order:
// NFC and line endings, newline runs, space runs, "Page N of M" footers,
// digit-only lines, dot and hyphen runs, then a final trim.
// It never fails; empty input yields empty output.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	text := norm.NFC.String(raw)
	text = lineEndings.Replace(text)

	text = newlineRun.ReplaceAllString(text, "\n")
	text = spaceRun.ReplaceAllString(text, " ")
	text = pageFooter.ReplaceAllString(text, "")
	text = pageNumber.ReplaceAllString(text, "")
	text = ellipsisRun.ReplaceAllString(text, "...")
	text = hyphenRun.ReplaceAllString(text, "---")

	return strings.TrimSpace(text)
}

// WordCount returns the number of whitespace-separated fields in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
