package embedding

import (
	"context"
	"hash/fnv"
	"sync/atomic"

	"github.com/hyperjump/clausewise/pkg/utils"
)

// MockEmbedder is a deterministic bag-of-words embedder for tests. Each
// token adds weight to a hashed bucket, so sentences sharing words get
// similar vectors and identical text always gets the identical vector.
type MockEmbedder struct {
	dimensions int
	calls      atomic.Int64
}

// NewMockEmbedder returns a mock of the given dimension (default 64).
func NewMockEmbedder(dimensions int) *MockEmbedder {
	if dimensions <= 0 {
		dimensions = 64
	}
	return &MockEmbedder{dimensions: dimensions}
}

// Embed returns the unit-length hashed bag of words of text.
func (e *MockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	e.calls.Add(1)
	v := make([]float32, e.dimensions)
	for _, tok := range Words(text) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		v[int(h.Sum32())%e.dimensions]++
	}
	utils.NormalizeL2(v)
	return v, nil
}

// EmbedBatch calls Embed for each text.
func (e *MockEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return embedEach(ctx, e, texts)
}

// Dimensions returns the embedding dimension.
func (e *MockEmbedder) Dimensions() int { return e.dimensions }

// Calls returns how many texts were embedded.
func (e *MockEmbedder) Calls() int { return int(e.calls.Load()) }

// Close is a no-op.
func (e *MockEmbedder) Close() error { return nil }
