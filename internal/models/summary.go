package models

// SummaryKind selects how a summary is produced.
type SummaryKind string

const (
	SummaryExtractive  SummaryKind = "extractive"
	SummaryAbstractive SummaryKind = "abstractive"
	SummaryFocused     SummaryKind = "focused"
)

// SummaryRequest is the input for summarizing a document.
type SummaryRequest struct {
	Text      string      `json:"text"`
	Kind      SummaryKind `json:"kind,omitempty"`
	MaxLength int         `json:"max_length,omitempty"`
	MinLength int         `json:"min_length,omitempty"`
	Sentences int         `json:"sentences,omitempty"`
	Focus     []string    `json:"focus,omitempty"`
}

// Summary is a generated or extracted summary. Fallback is set when the
// requested kind could not be served and an extractive summary was returned.
type Summary struct {
	Kind      SummaryKind       `json:"kind"`
	Text      string            `json:"text"`
	Sentences []string          `json:"sentences,omitempty"`
	Focus     map[string]string `json:"focus,omitempty"`
	Fallback  bool              `json:"fallback,omitempty"`
}

// LegalInsights buckets sentences by legal importance.
type LegalInsights struct {
	HighImportance   []string            `json:"high_importance"`
	MediumImportance []string            `json:"medium_importance"`
	LowImportance    []string            `json:"low_importance"`
	ClauseTypes      map[string][]string `json:"clause_types"`
}
