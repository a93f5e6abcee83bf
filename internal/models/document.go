// Package models defines the data shapes shared by the analysis engine, the
// summarization layer, and the HTTP API.
package models

// Document is one uploaded or submitted document after normalization.
// It is built once per request and not modified afterwards.
type Document struct {
	ID        string `json:"id"`
	Filename  string `json:"filename,omitempty"`
	RawText   string `json:"raw_text,omitempty"`
	CleanText string `json:"clean_text"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

// LegalSections maps a legal section name to the paragraphs that mention it.
type LegalSections map[string][]string

// ProcessedDocument is the full per-document pipeline output: the document
// itself plus every extracted signal and the comprehensive analysis.
type ProcessedDocument struct {
	Document  *Document      `json:"document"`
	Sections  LegalSections  `json:"legal_sections"`
	Entities  EntityResult   `json:"entities"`
	Dates     []DateMention  `json:"dates_and_deadlines"`
	Parties   []string       `json:"parties"`
	Citations []Citation     `json:"citations"`
	Analysis  AnalysisResult `json:"analysis"`
}
