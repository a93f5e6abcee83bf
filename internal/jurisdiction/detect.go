// Package jurisdiction scores a document against legal-system signatures.
package jurisdiction

import (
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
)

const (
	keywordWeight    = 2.0
	dateFormatWeight = 0.5
)

// Detect scores text against every configured jurisdiction and normalizes
// the scores to sum to 1. When nothing matches, every score is 0.
// Keyword hits count non-overlapping case-insensitive occurrences; date
// format hits count regex matches against the original text.
func Detect(lib *patterns.Library, text string) models.JurisdictionScores {
	scores := Raw(lib, text)

	var total float64
	for _, s := range scores {
		total += s
	}
	if total > 0 {
		for tag, s := range scores {
			scores[tag] = s / total
		}
	}
	return scores
}

// Raw returns the unnormalized score per jurisdiction.
func Raw(lib *patterns.Library, text string) models.JurisdictionScores {
	scores := make(models.JurisdictionScores, len(lib.Jurisdictions))
	lower := strings.ToLower(text)

	for _, j := range lib.Jurisdictions {
		var score float64
		for _, kw := range j.Keywords {
			kw = strings.ToLower(kw)
			if kw == "" {
				continue
			}
			score += keywordWeight * float64(strings.Count(lower, kw))
		}
		for _, re := range j.DateFormatRegexps() {
			score += dateFormatWeight * float64(len(re.FindAllStringIndex(text, -1)))
		}
		scores[j.Tag] = score
	}
	return scores
}

// Top returns the highest scoring jurisdiction, or "" when no signal fired.
// Ties go to the jurisdiction declared first.
func Top(lib *patterns.Library, scores models.JurisdictionScores) string {
	best, bestScore := "", 0.0
	for _, j := range lib.Jurisdictions {
		if s := scores[j.Tag]; s > bestScore {
			best, bestScore = j.Tag, s
		}
	}
	return best
}

// ContractTypes returns the contract types of jurisdiction tag that text mentions.
func ContractTypes(lib *patterns.Library, tag, text string) []string {
	found := []string{}
	lower := strings.ToLower(text)
	for _, j := range lib.Jurisdictions {
		if j.Tag != tag {
			continue
		}
		for _, ct := range j.ContractTypes {
			if strings.Contains(lower, strings.ToLower(ct)) {
				found = append(found, ct)
			}
		}
	}
	return found
}
