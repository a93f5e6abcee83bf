package clauses

import (
	"fmt"
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
)

// Analyze segments text and classifies every clause. Clause IDs are
// clause_1, clause_2, ... over the kept segments.
func Analyze(lib *patterns.Library, text string) models.ClauseSet {
	segments := Segment(lib, text)
	out := make(models.ClauseSet, 0, len(segments))
	for i, seg := range segments {
		out = append(out, Classify(lib, fmt.Sprintf("clause_%d", i+1), seg))
	}
	return out
}

// Classify builds the clause record for one segment.
func Classify(lib *patterns.Library, id, text string) models.Clause {
	return models.Clause{
		ID:               id,
		Text:             text,
		Type:             ClassifyType(lib, text),
		RiskLevel:        AssessRisk(lib, text),
		KeyTerms:         ExtractKeyTerms(lib, text),
		Obligations:      ExtractObligations(lib, text),
		Dates:            ExtractDates(lib, text),
		PartiesMentioned: ExtractParties(lib, text),
	}
}

// IdentifySections assigns each non-empty line of text to every legal
// section whose clause-type keywords it contains. Every configured section is
// present in the result, possibly with no paragraphs.
func IdentifySections(lib *patterns.Library, text string) models.LegalSections {
	sections := make(models.LegalSections, len(lib.LegalSections))
	for _, name := range lib.LegalSections {
		sections[name] = []string{}
	}

	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	for _, set := range lib.ClauseTypes {
		if _, ok := sections[set.Name]; !ok {
			continue
		}
		for _, p := range paragraphs {
			if containsAny(strings.ToLower(p), set.Keywords) {
				sections[set.Name] = append(sections[set.Name], p)
			}
		}
	}
	return sections
}
