package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/pkg/utils"
)

var (
	// ErrEmptyText is returned for blank input.
	ErrEmptyText = errors.New("no text to summarize")
	// ErrUnknownKind is returned for an unrecognized summary kind.
	ErrUnknownKind = errors.New("unknown summary kind")
)

const (
	abstractiveChars      = 10000
	prioritySentences     = 10
	priorityThreshold     = 0.6
	maxAbstractiveLength  = 200
	maxAbstractiveMinimum = 30
	focusSentences        = 5
	focusMaxLength        = 100
	focusMinLength        = 20
)

// Defaults are the lengths used when a request leaves them unset.
type Defaults struct {
	MaxLength int
	MinLength int
	Sentences int
}

// Service dispatches summary requests and falls back to extractive
// summaries when no abstractive backend answers.
type Service struct {
	extractive *Extractive
	summarizer Summarizer
	defaults   Defaults
	logger     *zap.Logger
}

// NewService creates a Service. summarizer may be nil, in which case every
// abstractive request is served extractively.
func NewService(extractive *Extractive, summarizer Summarizer, defaults Defaults, logger *zap.Logger) *Service {
	if extractive == nil {
		extractive = NewExtractive(nil)
	}
	if defaults.MaxLength <= 0 {
		defaults.MaxLength = 150
	}
	if defaults.MinLength <= 0 {
		defaults.MinLength = 50
	}
	if defaults.Sentences <= 0 {
		defaults.Sentences = DefaultSentences
	}
	return &Service{extractive: extractive, summarizer: summarizer, defaults: defaults, logger: utils.OrNop(logger)}
}

// Summarize serves req according to its kind; an empty kind is extractive.
func (s *Service) Summarize(ctx context.Context, req models.SummaryRequest) (*models.Summary, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}
	switch req.Kind {
	case "", models.SummaryExtractive:
		return s.Extractive(ctx, req.Text, req.Sentences)
	case models.SummaryAbstractive:
		return s.Abstractive(ctx, req.Text, req.MaxLength, req.MinLength)
	case models.SummaryFocused:
		return s.Focused(ctx, req.Text, req.Focus)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
}

// Extractive returns the top n sentences of text.
func (s *Service) Extractive(ctx context.Context, text string, n int) (*models.Summary, error) {
	if n <= 0 {
		n = s.defaults.Sentences
	}
	sentences, err := s.extractive.Select(ctx, text, n)
	if err != nil {
		return nil, err
	}
	return &models.Summary{
		Kind:      models.SummaryExtractive,
		Text:      strings.Join(sentences, " "),
		Sentences: sentences,
	}, nil
}

// Abstractive summarizes the legally important sentences of text, or the
// whole text when none stand out. Any backend failure yields an extractive
// summary with Fallback set.
func (s *Service) Abstractive(ctx context.Context, text string, maxLength, minLength int) (*models.Summary, error) {
	if maxLength <= 0 {
		maxLength = s.defaults.MaxLength
	}
	if minLength <= 0 {
		minLength = s.defaults.MinLength
	}
	if s.summarizer != nil {
		out, err := s.summarizer.Summarize(ctx, s.prioritize(ctx, text), min(maxLength, maxAbstractiveLength), min(minLength, maxAbstractiveMinimum))
		if err == nil && strings.TrimSpace(out) != "" {
			return &models.Summary{Kind: models.SummaryAbstractive, Text: out}, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("abstractive summary failed, using extractive fallback", zap.Error(err))
	}
	sum, err := s.Extractive(ctx, text, s.defaults.Sentences)
	if err != nil {
		return nil, err
	}
	sum.Kind = models.SummaryAbstractive
	sum.Fallback = true
	return sum, nil
}

// prioritize keeps up to ten of the first fifty sentences whose legal
// importance exceeds 0.6.
func (s *Service) prioritize(ctx context.Context, text string) string {
	text = utils.TruncateRunes(text, abstractiveChars)
	sentences := SplitSentences(text)
	if len(sentences) > extractiveSentences {
		sentences = sentences[:extractiveSentences]
	}
	var keep []string
	for _, sentence := range sentences {
		c, err := s.extractive.Classifier().Classify(ctx, sentence)
		if err != nil || c.Score <= priorityThreshold {
			continue
		}
		keep = append(keep, sentence)
		if len(keep) == prioritySentences {
			break
		}
	}
	if len(keep) == 0 {
		return text
	}
	return strings.Join(keep, " ")
}

// Focused summarizes text once per focus area (DefaultFocusAreas when
// areas is empty). Each area is summarized from its best matching
// sentences; without a backend the sentences themselves are returned.
func (s *Service) Focused(ctx context.Context, text string, areas []string) (*models.Summary, error) {
	if len(areas) == 0 {
		areas = DefaultFocusAreas
	}
	retriever, err := NewFocusRetriever(substantive(SplitSentences(text), minSentenceRunes))
	if err != nil {
		return nil, err
	}
	defer retriever.Close()

	out := &models.Summary{Kind: models.SummaryFocused, Focus: make(map[string]string, len(areas))}
	for _, area := range areas {
		hits, err := retriever.Retrieve(ctx, area, focusSentences)
		if err != nil {
			return nil, err
		}
		if len(hits) == 0 {
			out.Focus[area] = ""
			continue
		}
		joined := strings.Join(hits, " ")
		summary, err := s.summarizeFocus(ctx, area, joined)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Debug("focus summary unavailable", zap.String("area", area), zap.Error(err))
			out.Focus[area] = joined
			out.Fallback = true
			continue
		}
		out.Focus[area] = summary
	}
	return out, nil
}

func (s *Service) summarizeFocus(ctx context.Context, area, text string) (string, error) {
	if s.summarizer == nil {
		return "", ErrUnavailable
	}
	if fs, ok := s.summarizer.(FocusSummarizer); ok {
		return fs.SummarizeFocus(ctx, area, text, focusMaxLength, focusMinLength)
	}
	return s.summarizer.Summarize(ctx, text, focusMaxLength, focusMinLength)
}

// Insights buckets the sentences of text by legal importance.
func (s *Service) Insights(ctx context.Context, text string) models.LegalInsights {
	return Insights(ctx, s.extractive.Classifier(), text)
}
