// Package summarize produces extractive, abstractive, and focused summaries
// of legal text.
package summarize

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when no abstractive backend can serve a request.
var ErrUnavailable = errors.New("summarizer unavailable")

// Summarizer generates an abstractive summary of text. maxLength and
// minLength are word counts.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// FocusSummarizer is implemented by summarizers that can target a named
// topic such as "parties" or "dates".
type FocusSummarizer interface {
	SummarizeFocus(ctx context.Context, area, text string, maxLength, minLength int) (string, error)
}

// DefaultFocusAreas are summarized when a focused request names none.
var DefaultFocusAreas = []string{"parties", "obligations", "terms", "conditions", "dates"}
