// Package lru implements the Least-Recently-Used replacement policy.
package lru

import (
	"github.com/IvanBrykalov/policycache/cache"
	"github.com/IvanBrykalov/policycache/internal/arena"
)

type entry[V any] struct {
	val V
	h   arena.Handle
}

// Cache is a classic move-to-front LRU: one recency-ordered key
// sequence plus a key→(value, handle) index. Every Get hit and Put
// promotes the key to MRU; the tail is always the next eviction
// candidate. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	opt  cache.Options[K, V]
	slab *arena.Arena[K]
	seq  arena.List[K] // MRU at front, eviction candidate at back
	m    map[K]entry[V]
}

// New constructs an LRU cache. Capacity 0 yields a cache that never
// retains entries; a negative capacity returns ErrNegativeCapacity.
func New[K comparable, V any](opt cache.Options[K, V]) (*Cache[K, V], error) {
	if err := opt.Normalize(); err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		opt:  opt,
		slab: arena.New[K](opt.Capacity),
		seq:  arena.NewList[K](),
		m:    make(map[K]entry[V], opt.Capacity),
	}, nil
}

// Put inserts or updates k→v at the MRU position, evicting the LRU
// tail first when a new key would exceed capacity.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.opt.Capacity == 0 {
		return
	}
	if e, ok := c.m[k]; ok {
		e.val = v
		c.m[k] = e
		c.slab.MoveToFront(&c.seq, e.h)
		return
	}
	if len(c.m) == c.opt.Capacity {
		c.evictBack()
	}
	h := c.slab.PushFront(&c.seq, k)
	c.m[k] = entry[V]{val: v, h: h}
	c.opt.Metrics.Size(len(c.m))
}

// Get returns the value for k, promoting it to MRU on a hit.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	e, ok := c.m[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.slab.MoveToFront(&c.seq, e.h)
	c.opt.Metrics.Hit()
	return e.val, true
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return len(c.m) }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.opt.Capacity }

// Clear removes all entries. Idempotent; does not fire OnEvict.
func (c *Cache[K, V]) Clear() {
	clear(c.m)
	c.slab.Reset()
	c.seq.Reset()
	c.opt.Metrics.Size(0)
}

func (c *Cache[K, V]) evictBack() {
	k := c.slab.Remove(&c.seq, c.seq.Back())
	e := c.m[k]
	delete(c.m, k)
	c.opt.Evicted(k, e.val, cache.EvictCapacity)
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
