package models

// JurisdictionScores maps a jurisdiction tag to its normalized weight in [0,1].
type JurisdictionScores map[string]float64

// ComplianceFindings maps a compliance regime to the keywords that matched.
type ComplianceFindings map[string][]string

// RiskEntry is one clause listed under a risk bucket.
type RiskEntry struct {
	Clause   string   `json:"clause"`
	Type     string   `json:"type"`
	KeyTerms []string `json:"key_terms"`
}

// RiskDistribution counts clauses per risk level.
type RiskDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// RiskDetails lists clauses per risk level.
type RiskDetails struct {
	High   []RiskEntry `json:"high"`
	Medium []RiskEntry `json:"medium"`
	Low    []RiskEntry `json:"low"`
}

// RiskReport is the document-level roll-up of clause risk.
type RiskReport struct {
	TotalClauses     int              `json:"total_clauses"`
	RiskDistribution RiskDistribution `json:"risk_distribution"`
	RiskDetails      RiskDetails      `json:"risk_details"`
	Recommendations  []string         `json:"recommendations"`
}

// AnalysisResult is the comprehensive analysis of one document.
type AnalysisResult struct {
	Jurisdiction JurisdictionScores `json:"jurisdiction"`
	Clauses      ClauseSet          `json:"clauses"`
	Compliance   ComplianceFindings `json:"compliance"`
	RiskReport   RiskReport         `json:"risk_report"`
}
