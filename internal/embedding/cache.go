package embedding

import (
	"container/list"
	"context"
	"sync"
)

// LRU is a fixed-capacity least-recently-used cache safe for concurrent use.
type LRU[V any] struct {
	capacity int
	items    map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

type lruEntry[V any] struct {
	key   string
	value V
}

// NewLRU returns a cache holding at most capacity entries (minimum 1).
func NewLRU[V any](capacity int) *LRU[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[V]{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value for key, evicting the least recently used entry when full.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		elem.Value.(*lruEntry[V]).value = value
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(&lruEntry[V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry[V]).key)
	}
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// CachedEmbedder memoizes another embedder's vectors by text.
type CachedEmbedder struct {
	inner Embedder
	cache *LRU[[]float32]
}

// NewCached wraps inner with an LRU of the given size.
func NewCached(inner Embedder, size int) *CachedEmbedder {
	return &CachedEmbedder{inner: inner, cache: NewLRU[[]float32](size)}
}

// Embed returns the cached vector for text or computes and stores it.
func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := c.cache.Get(text); ok {
		return v, nil
	}
	v, err := c.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	c.cache.Set(text, v)
	return v, nil
}

// EmbedBatch embeds each text through the cache.
func (c *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return embedEach(ctx, c, texts)
}

// Dimensions returns the inner embedder's dimension.
func (c *CachedEmbedder) Dimensions() int { return c.inner.Dimensions() }

// Close closes the inner embedder.
func (c *CachedEmbedder) Close() error { return c.inner.Close() }
