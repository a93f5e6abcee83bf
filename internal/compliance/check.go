// Package compliance detects regulatory regimes a document touches.
package compliance

import (
	"strings"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
)

// Check returns, for each regime with at least one keyword present in text,
// the matched keywords in table order and spelling. Matching is a
// case-insensitive substring test.
func Check(lib *patterns.Library, text string) models.ComplianceFindings {
	findings := make(models.ComplianceFindings)
	lower := strings.ToLower(text)
	for _, regime := range lib.Compliance {
		var matched []string
		for _, kw := range regime.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) > 0 {
			findings[regime.Name] = matched
		}
	}
	return findings
}

// Regimes returns the regime names in findings, in library order.
func Regimes(lib *patterns.Library, findings models.ComplianceFindings) []string {
	names := []string{}
	for _, regime := range lib.Compliance {
		if _, ok := findings[regime.Name]; ok {
			names = append(names, regime.Name)
		}
	}
	return names
}
