package entities

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/hyperjump/clausewise/internal/patterns"
)

const (
	minPartyLen = 2
	maxPartyLen = 100
)

// ExtractParties returns the distinct party names found by the library's
// party patterns. Every non-empty capture group is a candidate; candidates
// are stripped of characters outside letters, digits, whitespace, and &,.-
// and kept only when longer than 2 and shorter than 100 characters.
// The result is sorted.
func ExtractParties(lib *patterns.Library, text string) []string {
	parties := []string{}
	if strings.TrimSpace(text) == "" {
		return parties
	}
	cleanup := lib.PartyCleanupRegexp()
	seen := make(map[string]struct{})

	for _, re := range lib.PartyRegexps() {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, group := range m[1:] {
				if group == "" {
					continue
				}
				party := cleanup.ReplaceAllString(strings.TrimSpace(group), "")
				n := utf8.RuneCountInString(party)
				if n <= minPartyLen || n >= maxPartyLen {
					continue
				}
				if _, dup := seen[party]; dup {
					continue
				}
				seen[party] = struct{}{}
				parties = append(parties, party)
			}
		}
	}
	sort.Strings(parties)
	return parties
}
