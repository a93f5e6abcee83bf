package clauses

import (
	"sort"
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
)

// ClassifyType returns the first clause type whose keywords appear in text,
// trying the primary table and then the secondary heuristics, each in
// declaration order. Text that matches nothing is "general".
func ClassifyType(lib *patterns.Library, text string) string {
	lower := strings.ToLower(text)
	if name, ok := firstMatch(lib.ClauseTypes, lower); ok {
		return name
	}
	if name, ok := firstMatch(lib.SecondaryClauseTypes, lower); ok {
		return name
	}
	return models.ClauseTypeGeneral
}

func firstMatch(sets []patterns.KeywordSet, lower string) (string, bool) {
	for _, set := range sets {
		if containsAny(lower, set.Keywords) {
			return set.Name, true
		}
	}
	return "", false
}

// AssessRisk rates text by the number of distinct risk indicators it
// contains: two or more high indicators is high; one high indicator or two
// medium ones is medium; anything else is low.
func AssessRisk(lib *patterns.Library, text string) models.RiskLevel {
	lower := strings.ToLower(text)
	high := countPresent(lower, lib.Risk.High)
	medium := countPresent(lower, lib.Risk.Medium)

	switch {
	case high >= 2:
		return models.RiskHigh
	case high >= 1 || medium >= 2:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// ExtractKeyTerms returns the distinct operative words in text, lower-cased and sorted.
func ExtractKeyTerms(lib *patterns.Library, text string) []string {
	terms := []string{}
	seen := make(map[string]struct{})
	for _, m := range lib.KeyTermRegexp().FindAllString(text, -1) {
		term := strings.ToLower(m)
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// ExtractObligations returns the phrases following obligation verbs, pattern
// by pattern, up to the library's limit. Duplicates are kept.
func ExtractObligations(lib *patterns.Library, text string) []string {
	limit := lib.Limits.MaxObligations
	obligations := []string{}
	for _, re := range lib.ObligationRegexps() {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(obligations) >= limit {
				return obligations
			}
			if len(m) < 2 {
				continue
			}
			if phrase := strings.TrimSpace(m[1]); phrase != "" {
				obligations = append(obligations, phrase)
			}
		}
	}
	return obligations
}

// ExtractDates returns the date and duration phrases in a clause, pattern by pattern.
func ExtractDates(lib *patterns.Library, text string) []string {
	dates := []string{}
	for _, re := range lib.ClauseDateRegexps() {
		dates = append(dates, re.FindAllString(text, -1)...)
	}
	return dates
}

// ExtractParties returns up to the library's limit of distinct party
// mentions in a clause, sorted.
func ExtractParties(lib *patterns.Library, text string) []string {
	seen := make(map[string]struct{})
	parties := []string{}
	for _, re := range lib.ClausePartyRegexps() {
		for _, m := range re.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			parties = append(parties, m)
		}
	}
	sort.Strings(parties)
	if limit := lib.Limits.MaxClauseParties; len(parties) > limit {
		parties = parties[:limit]
	}
	return parties
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func countPresent(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			n++
		}
	}
	return n
}
