package heuristic

import (
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/pathsearch/core"
)

// DefaultCacheSize is the entry budget used when NewCached gets size <= 0.
const DefaultCacheSize = 4096

// cacheKey identifies one estimate. The revision makes entries from an older
// version of a mutated graph unreachable.
type cacheKey struct {
	graph    *core.Graph
	revision uint64
	from, to string
}

// cacheValue stores either a distance or the fact that the pair is disconnected.
type cacheValue struct {
	h        int64
	detached bool
}

// Cached memoises another provider in a bounded LRU. Only successful estimates
// and ErrNoHeuristicPath outcomes are cached; other errors pass through.
type Cached struct {
	inner  Provider
	cache  *lru.Cache[cacheKey, cacheValue]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCached wraps p with an LRU cache of the given size.
func NewCached(p Provider, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[cacheKey, cacheValue](size)
	if err != nil {
		return nil, fmt.Errorf("heuristic: cache: %w", err)
	}

	return &Cached{inner: p, cache: c}, nil
}

// Estimate returns the cached estimate or computes and stores it.
func (c *Cached) Estimate(g *core.Graph, from, to string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	key := cacheKey{graph: g, revision: g.Revision(), from: from, to: to}
	if v, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		if v.detached {
			return 0, fmt.Errorf("%w: %s→%s", ErrNoHeuristicPath, from, to)
		}
		return v.h, nil
	}
	c.misses.Add(1)

	h, err := c.inner.Estimate(g, from, to)
	switch {
	case err == nil:
		c.cache.Add(key, cacheValue{h: h})
	case errors.Is(err, ErrNoHeuristicPath):
		c.cache.Add(key, cacheValue{detached: true})
	}

	return h, err
}

// Stats reports cache hits and misses since creation.
func (c *Cached) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len reports the number of cached estimates.
func (c *Cached) Len() int { return c.cache.Len() }
