package analysis

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/extract"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/normalize"
	"github.com/hyperjump/clausewise/pkg/utils"
)

// ErrExtractionFailed means no text could be obtained from a document. It is
// terminal for that document.
var ErrExtractionFailed = errors.New("could not extract text from document")

// TextExtractor turns document files into raw text.
type TextExtractor interface {
	Extract(path string) (string, error)
	ExtractBytes(content []byte, ext string) (string, error)
}

// Processor runs extraction, normalization, and analysis for one document.
type Processor struct {
	analyzer  *Analyzer
	extractor TextExtractor
	logger    *zap.Logger
}

// NewProcessor returns a processor. A nil extractor uses extract.NewExtractor.
func NewProcessor(analyzer *Analyzer, extractor TextExtractor, logger *zap.Logger) *Processor {
	if extractor == nil {
		extractor = extract.NewExtractor()
	}
	return &Processor{analyzer: analyzer, extractor: extractor, logger: utils.OrNop(logger)}
}

// Analyzer returns the processor's analyzer.
func (p *Processor) Analyzer() *Analyzer {
	return p.analyzer
}

// ProcessFile extracts and analyzes the file at path.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*models.ProcessedDocument, error) {
	raw, err := p.extractor.Extract(path)
	if err != nil {
		return nil, p.extractionError(path, err)
	}
	return p.process(ctx, filepath.Base(path), raw)
}

// ProcessBytes extracts and analyzes an in-memory document. The format is
// taken from name's extension.
func (p *Processor) ProcessBytes(ctx context.Context, name string, data []byte) (*models.ProcessedDocument, error) {
	raw, err := p.extractor.ExtractBytes(data, strings.ToLower(filepath.Ext(name)))
	if err != nil {
		return nil, p.extractionError(name, err)
	}
	return p.process(ctx, filepath.Base(name), raw)
}

// ProcessText analyzes text that was already extracted.
func (p *Processor) ProcessText(ctx context.Context, name, raw string) (*models.ProcessedDocument, error) {
	return p.process(ctx, name, raw)
}

// NewDocument normalizes raw into a Document with a fresh ID.
func NewDocument(name, raw string) *models.Document {
	clean := normalize.Normalize(raw)
	return &models.Document{
		ID:        uuid.NewString(),
		Filename:  name,
		RawText:   raw,
		CleanText: clean,
		WordCount: normalize.WordCount(clean),
		CharCount: utf8.RuneCountInString(clean),
	}
}

func (p *Processor) process(ctx context.Context, name, raw string) (*models.ProcessedDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: %s: no text", ErrExtractionFailed, name)
	}
	doc := NewDocument(name, raw)
	if doc.CleanText == "" {
		return nil, fmt.Errorf("%w: %s: no text after normalization", ErrExtractionFailed, name)
	}

	a := p.analyzer
	text := doc.CleanText
	out := &models.ProcessedDocument{
		Document:  doc,
		Sections:  a.IdentifySections(text),
		Entities:  a.ExtractEntities(ctx, text),
		Dates:     a.ExtractDates(text),
		Parties:   a.ExtractParties(text),
		Citations: a.ExtractCitations(text),
		Analysis:  a.Analyze(ctx, text),
	}

	p.logger.Info("processed document",
		zap.String("id", doc.ID),
		zap.String("file", name),
		zap.Int("words", doc.WordCount),
		zap.Int("clauses", len(out.Analysis.Clauses)),
		zap.Int("entities", out.Entities.TotalCount))
	return out, nil
}

func (p *Processor) extractionError(name string, err error) error {
	if errors.Is(err, extract.ErrUnsupportedFormat) {
		return err
	}
	p.logger.Warn("extraction failed", zap.String("file", name), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrExtractionFailed, name, err)
}
