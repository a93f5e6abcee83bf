// Package risk rolls clause risk levels up into a document-level report.
package risk

import "github.com/hyperjump/clausewise/internal/models"

const (
	RecommendLegalReview   = "High-risk clauses detected. Consider legal review before signing."
	RecommendReviewCareful = "Multiple medium-risk clauses present. Review carefully."
	RecommendManageable    = "Overall risk level appears manageable."
)

// Report buckets clauses by risk level and derives recommendations.
// Clauses with an unknown level are counted as low.
func Report(clauses models.ClauseSet) models.RiskReport {
	details := models.RiskDetails{
		High:   []models.RiskEntry{},
		Medium: []models.RiskEntry{},
		Low:    []models.RiskEntry{},
	}
	for _, c := range clauses {
		entry := models.RiskEntry{Clause: c.ID, Type: c.Type, KeyTerms: c.KeyTerms}
		if entry.KeyTerms == nil {
			entry.KeyTerms = []string{}
		}
		switch c.RiskLevel {
		case models.RiskHigh:
			details.High = append(details.High, entry)
		case models.RiskMedium:
			details.Medium = append(details.Medium, entry)
		default:
			details.Low = append(details.Low, entry)
		}
	}

	return models.RiskReport{
		TotalClauses: len(clauses),
		RiskDistribution: models.RiskDistribution{
			High:   len(details.High),
			Medium: len(details.Medium),
			Low:    len(details.Low),
		},
		RiskDetails:     details,
		Recommendations: Recommend(details),
	}
}

// Recommend applies the recommendation rules in order. More than one can apply.
func Recommend(details models.RiskDetails) []string {
	recs := []string{}
	if len(details.High) > 0 {
		recs = append(recs, RecommendLegalReview)
	}
	if len(details.Medium) > 3 {
		recs = append(recs, RecommendReviewCareful)
	}
	if len(details.High) == 0 && len(details.Medium) <= 2 {
		recs = append(recs, RecommendManageable)
	}
	return recs
}

// Overall returns the most severe level present, low for an empty report.
func Overall(r models.RiskReport) models.RiskLevel {
	switch {
	case r.RiskDistribution.High > 0:
		return models.RiskHigh
	case r.RiskDistribution.Medium > 0:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
