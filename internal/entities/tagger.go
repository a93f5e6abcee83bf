// Package entities extracts named entities, dates, parties, and citations
// from normalized legal text.
package entities

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// EntityTagger labels entity spans in text.
type EntityTagger interface {
	Tag(ctx context.Context, text string) (models.EntityResult, error)
}

// SpanSource is an external tagging backend, such as *nlp.Client.
type SpanSource interface {
	TagEntities(ctx context.Context, text string) ([]models.TaggedSpan, error)
}

// RegexTagger tags ORG, PERSON, DATE, and MONEY spans with the library's
// entity patterns. It never fails.
type RegexTagger struct {
	lib *patterns.Library
}

// NewRegexTagger returns a tagger over lib.
func NewRegexTagger(lib *patterns.Library) *RegexTagger {
	return &RegexTagger{lib: lib}
}

// Tag returns every match of every entity pattern, label by label in library
// order, matches in document order within each pattern.
func (t *RegexTagger) Tag(_ context.Context, text string) (models.EntityResult, error) {
	return t.tag(text), nil
}

func (t *RegexTagger) tag(text string) models.EntityResult {
	if strings.TrimSpace(text) == "" {
		return models.NewEntityResult(nil)
	}
	var found []models.Entity
	runes := utils.NewRuneIndex(text)
	for _, set := range t.lib.Entities {
		for _, re := range set.Regexps() {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				found = append(found, models.Entity{
					Text:        text[loc[0]:loc[1]],
					Label:       set.Label,
					Start:       runes.Offset(loc[0]),
					End:         runes.Offset(loc[1]),
					Description: set.Label,
				})
			}
		}
	}
	return models.NewEntityResult(found)
}

// ModelBackedTagger delegates to an external tagging service and falls back
// to a RegexTagger on any failure.
type ModelBackedTagger struct {
	source   SpanSource
	fallback *RegexTagger
	logger   *zap.Logger
}

// NewModelBackedTagger returns a tagger that asks source first. A nil logger
// discards log output.
func NewModelBackedTagger(source SpanSource, lib *patterns.Library, logger *zap.Logger) *ModelBackedTagger {
	return &ModelBackedTagger{
		source:   source,
		fallback: NewRegexTagger(lib),
		logger:   utils.OrNop(logger),
	}
}

// Tag never returns an error; backend failures are logged and the regex
// result is returned instead.
func (t *ModelBackedTagger) Tag(ctx context.Context, text string) (models.EntityResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.NewEntityResult(nil), nil
	}
	spans, err := t.fetch(ctx, text)
	if err != nil {
		t.logger.Warn("entity tagging backend failed, using regex fallback", zap.Error(err))
		return t.fallback.tag(text), nil
	}

	found := make([]models.Entity, 0, len(spans))
	for _, s := range spans {
		found = append(found, models.Entity{
			Text:        s.Text,
			Label:       s.Label,
			Start:       s.Start,
			End:         s.End,
			Description: Describe(s.Label),
		})
	}
	return models.NewEntityResult(found), nil
}

func (t *ModelBackedTagger) fetch(ctx context.Context, text string) (spans []models.TaggedSpan, err error) {
	if t.source == nil {
		return nil, fmt.Errorf("no tagging backend")
	}
	defer func() {
		if r := recover(); r != nil {
			spans, err = nil, fmt.Errorf("tagging backend panicked: %v", r)
		}
	}()
	return t.source.TagEntities(ctx, text)
}
