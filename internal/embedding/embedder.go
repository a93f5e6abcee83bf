// Package embedding turns sentences into vectors used to rank sentences for
// extractive summaries.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrDisabled is returned by Open when embeddings are turned off in config.
var ErrDisabled = errors.New("embedding disabled")

// Embedder produces vector embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Dimensions() int
	Close() error
}

// Options configures Open.
type Options struct {
	Enabled    bool
	ModelPath  string
	Dimensions int
	MaxTokens  int
	CacheSize  int
}

// Open returns the ONNX embedder described by opts, wrapped in an LRU cache
// when CacheSize is positive.
func Open(opts Options) (Embedder, error) {
	if !opts.Enabled || opts.ModelPath == "" {
		return nil, ErrDisabled
	}
	if _, err := os.Stat(opts.ModelPath); err != nil {
		return nil, fmt.Errorf("embedding model: %w", err)
	}
	onnx, err := NewONNXEmbedder(opts.ModelPath, opts.Dimensions, opts.MaxTokens)
	if err != nil {
		return nil, err
	}
	if opts.CacheSize > 0 {
		return NewCached(onnx, opts.CacheSize), nil
	}
	return onnx, nil
}

// embedEach implements EmbedBatch for embedders without a native batch path.
func embedEach(ctx context.Context, e Embedder, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
