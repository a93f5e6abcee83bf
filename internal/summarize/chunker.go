package summarize

import (
	"context"
	"strings"
)

const (
	// ChunkThresholdWords is the word count above which text is chunked.
	ChunkThresholdWords = 1024
	// DefaultChunkChars is the maximum chunk length in characters.
	DefaultChunkChars = 1024
	// resummarizeWords is the combined length above which chunk summaries are summarized again.
	resummarizeWords = 200
)

// Chunker splits text into word-aligned chunks of bounded length.
type Chunker struct {
	maxChars int
}

// NewChunker creates a chunker whose chunks hold at most maxChars characters
// unless a single word is longer.
func NewChunker(maxChars int) *Chunker {
	if maxChars <= 0 {
		maxChars = DefaultChunkChars
	}
	return &Chunker{maxChars: maxChars}
}

// Chunk splits text on whitespace and packs words into chunks joined by
// single spaces. Empty text yields nil.
func (c *Chunker) Chunk(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var chunks []string
	var current []string
	length := 0
	for _, w := range words {
		if length+len(w)+1 > c.maxChars && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = []string{w}
			length = len(w)
			continue
		}
		current = append(current, w)
		length += len(w) + 1
	}
	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}
	return chunks
}

// Chunked wraps a Summarizer so long inputs are summarized chunk by chunk.
type Chunked struct {
	inner   Summarizer
	chunker *Chunker
}

// NewChunked wraps inner with the default chunker.
func NewChunked(inner Summarizer) *Chunked {
	return &Chunked{inner: inner, chunker: NewChunker(DefaultChunkChars)}
}

// Summarize passes short text straight through. Text over
// ChunkThresholdWords words is chunked, each chunk is summarized with a
// proportional share of the length budget, and the joined result is
// summarized once more if it is still long.
func (c *Chunked) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if len(strings.Fields(text)) <= ChunkThresholdWords {
		return c.inner.Summarize(ctx, text, maxLength, minLength)
	}
	chunks := c.chunker.Chunk(text)
	n := len(chunks)
	parts := make([]string, 0, n)
	for _, chunk := range chunks {
		s, err := c.inner.Summarize(ctx, chunk, maxLength/n+50, minLength/n)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	combined := strings.Join(parts, " ")
	if len(strings.Fields(combined)) > resummarizeWords {
		return c.inner.Summarize(ctx, combined, maxLength, minLength)
	}
	return combined, nil
}

// SummarizeFocus delegates to the inner summarizer when it supports focus areas.
func (c *Chunked) SummarizeFocus(ctx context.Context, area, text string, maxLength, minLength int) (string, error) {
	if fs, ok := c.inner.(FocusSummarizer); ok {
		return fs.SummarizeFocus(ctx, area, text, maxLength, minLength)
	}
	return c.inner.Summarize(ctx, text, maxLength, minLength)
}
