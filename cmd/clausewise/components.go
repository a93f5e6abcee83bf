package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/analysis"
	"github.com/hyperjump/clausewise/internal/config"
	"github.com/hyperjump/clausewise/internal/embedding"
	"github.com/hyperjump/clausewise/internal/entities"
	"github.com/hyperjump/clausewise/internal/extract"
	"github.com/hyperjump/clausewise/internal/nlp"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/internal/summarize"
)

// Components holds initialized services.
type Components struct {
	Processor  *analysis.Processor
	Summaries  *summarize.Service
	Embedder   embedding.Embedder
	Summarizer *summarize.GeminiSummarizer
}

func (c *Components) Close() {
	if c.Embedder != nil {
		_ = c.Embedder.Close()
	}
	if c.Summarizer != nil {
		_ = c.Summarizer.Close()
	}
}

func initializeComponents(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	lib, err := loadPatterns(cfg.Analysis.PatternsPath)
	if err != nil {
		return nil, err
	}

	var tagger entities.EntityTagger
	if cfg.NLP.Endpoint != "" {
		client := nlp.NewClient(cfg.NLP.Endpoint, time.Duration(cfg.NLP.TimeoutSeconds)*time.Second)
		tagger = entities.NewModelBackedTagger(client, lib, logger)
		logger.Info("nlp tagging enabled", zap.String("endpoint", cfg.NLP.Endpoint))
	}
	analyzer := analysis.NewAnalyzer(lib, tagger, logger)
	processor := analysis.NewProcessor(analyzer, extract.NewExtractor(), logger)

	c := &Components{Processor: processor}

	xopts := []summarize.ExtractiveOption{summarize.WithLogger(logger)}
	c.Embedder = openEmbedder(cfg, logger)
	if c.Embedder != nil {
		xopts = append(xopts, summarize.WithEmbedder(c.Embedder))
	}

	var summarizer summarize.Summarizer
	c.Summarizer = openSummarizer(ctx, cfg, logger)
	if c.Summarizer != nil {
		summarizer = summarize.NewChunked(c.Summarizer)
	}

	c.Summaries = summarize.NewService(
		summarize.NewExtractive(lib, xopts...),
		summarizer,
		summarize.Defaults{
			MaxLength: cfg.Summarizer.MaxLength,
			MinLength: cfg.Summarizer.MinLength,
			Sentences: cfg.Summarizer.Sentences,
		},
		logger,
	)
	return c, nil
}

// loadPatterns returns the built-in vocabulary, or the override at path.
func loadPatterns(path string) (*patterns.Library, error) {
	if path == "" {
		return patterns.Default(), nil
	}
	lib, err := patterns.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load patterns %s: %w", path, err)
	}
	return lib, nil
}

// openEmbedder returns nil when embeddings are disabled or the model cannot
// be loaded; extractive scoring then relies on legal importance alone.
func openEmbedder(cfg *config.Config, logger *zap.Logger) embedding.Embedder {
	e, err := embedding.Open(embedding.Options{
		Enabled:    cfg.Embedding.Enabled,
		ModelPath:  cfg.Embedding.ModelPath,
		Dimensions: cfg.Embedding.Dimensions,
		MaxTokens:  cfg.Embedding.MaxTokens,
		CacheSize:  cfg.Embedding.CacheSize,
	})
	if errors.Is(err, embedding.ErrDisabled) {
		return nil
	}
	if err != nil {
		logger.Warn("embedding model unavailable", zap.String("model", cfg.Embedding.ModelPath), zap.Error(err))
		return nil
	}
	return e
}

// openSummarizer returns nil unless the gemini provider is configured with
// an API key.
func openSummarizer(ctx context.Context, cfg *config.Config, logger *zap.Logger) *summarize.GeminiSummarizer {
	if cfg.Summarizer.Provider != "gemini" {
		return nil
	}
	g, err := summarize.NewGeminiSummarizer(ctx,
		cfg.Summarizer.APIKey(),
		cfg.Summarizer.Model,
		cfg.Summarizer.MaxOutputTokens,
		summarize.WithLegalPrompts(),
		summarize.WithGeminiLogger(logger),
	)
	if err != nil {
		logger.Info("abstractive summaries disabled", zap.Error(err))
		return nil
	}
	return g
}
