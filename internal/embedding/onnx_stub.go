//go:build !cgo

package embedding

import (
	"context"
	"errors"
)

// ONNXEmbedder is unavailable without cgo; see onnx.go.
type ONNXEmbedder struct{}

// NewONNXEmbedder always fails when built without cgo.
func NewONNXEmbedder(_ string, _, _ int) (*ONNXEmbedder, error) {
	return nil, errors.New("ONNX embedder requires CGO; build with CGO_ENABLED=1 and onnxruntime")
}

func (*ONNXEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, errors.New("ONNX embedder not available")
}

func (*ONNXEmbedder) EmbedBatch(context.Context, []string) ([][]float32, error) {
	return nil, errors.New("ONNX embedder not available")
}

func (*ONNXEmbedder) Dimensions() int { return 0 }

func (*ONNXEmbedder) Close() error { return nil }
