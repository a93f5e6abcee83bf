package entities

import (
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// ExtractCitations returns statute, regulation, and case references. Kinds
// are tried in library order; a match that overlaps a citation already found
// by an earlier kind is skipped, so "42 U.S.C. § 1983" is reported once as usc
// and not again as a bare section.
func ExtractCitations(lib *patterns.Library, text string) []models.Citation {
	citations := []models.Citation{}
	if strings.TrimSpace(text) == "" {
		return citations
	}
	runes := utils.NewRuneIndex(text)
	for _, set := range lib.Citations {
		for _, re := range set.Regexps() {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				start, end := runes.Offset(loc[0]), runes.Offset(loc[1])
				if overlaps(citations, start, end) {
					continue
				}
				citations = append(citations, models.Citation{
					Text:  text[loc[0]:loc[1]],
					Kind:  set.Label,
					Start: start,
					End:   end,
				})
			}
		}
	}
	return citations
}

func overlaps(found []models.Citation, start, end int) bool {
	for _, c := range found {
		if start < c.End && c.Start < end {
			return true
		}
	}
	return false
}
