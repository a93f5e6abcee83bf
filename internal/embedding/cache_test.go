package embedding

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
)

func TestLRU_GetSet(t *testing.T) {
	c := NewLRU[[]float32](2)
	if v, ok := c.Get("a"); ok || v != nil {
		t.Fatal("expected miss")
	}
	c.Set("a", []float32{1, 2, 3})
	v, ok := c.Get("a")
	if !ok || len(v) != 3 || v[0] != 1 {
		t.Errorf("Get: got %v, %v", v, ok)
	}
	c.Set("b", []float32{4, 5})
	c.Set("c", []float32{6}) // evicts a
	if _, ok := c.Get("a"); ok {
		t.Error("expected a to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("expected b to remain")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected c to be present")
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
}

func TestLRU_GetRefreshesRecency(t *testing.T) {
	c := NewLRU[int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3) // evicts b
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("a = %v, %v", v, ok)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := NewLRU[int](8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set(string(rune('a'+i)), j)
				c.Get(string(rune('a' + (j % 8))))
			}
		}(i)
	}
	wg.Wait()
	if c.Len() > 8 {
		t.Errorf("Len = %d exceeds capacity", c.Len())
	}
}

func TestCachedEmbedder(t *testing.T) {
	mock := NewMockEmbedder(16)
	c := NewCached(mock, 4)
	ctx := context.Background()

	a, err := c.Embed(ctx, "the tenant shall pay rent")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := c.Embed(ctx, "the tenant shall pay rent")
	if mock.Calls() != 1 {
		t.Errorf("inner calls = %d, want 1", mock.Calls())
	}
	if len(a) != 16 || len(b) != 16 || a[0] != b[0] {
		t.Errorf("cached vector mismatch: %v vs %v", a, b)
	}
	if c.Dimensions() != 16 {
		t.Errorf("Dimensions = %d", c.Dimensions())
	}

	vs, err := c.EmbedBatch(ctx, []string{"one", "two", "one"})
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != 3 || mock.Calls() != 3 {
		t.Errorf("batch: %d vectors, %d inner calls", len(vs), mock.Calls())
	}
}

func TestEmbedBatch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMockEmbedder(8).EmbedBatch(ctx, []string{"x"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestOpen_Disabled(t *testing.T) {
	if _, err := Open(Options{Enabled: false, ModelPath: "model.onnx"}); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
	if _, err := Open(Options{Enabled: true}); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled for empty model path", err)
	}
}

func TestOpen_MissingModel(t *testing.T) {
	_, err := Open(Options{Enabled: true, ModelPath: filepath.Join(t.TempDir(), "missing.onnx"), Dimensions: 4})
	if err == nil || errors.Is(err, ErrDisabled) {
		t.Errorf("Open() error = %v, want a missing-model error", err)
	}
}
