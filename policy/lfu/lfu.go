// Package lfu implements the Least-Frequently-Used replacement policy
// with O(1) operations: keys are grouped into per-frequency buckets and
// a minFreq cursor tracks the smallest non-empty bucket.
package lfu

import (
	"github.com/IvanBrykalov/policycache/cache"
	"github.com/IvanBrykalov/policycache/internal/arena"
)

type entry[V any] struct {
	val  V
	freq int
	h    arena.Handle
}

// Cache evicts the least-frequently-used key; ties within a frequency
// are broken by recency (the least-recently-touched key in the bucket
// goes first). Frequencies start at 1, increment on every access (Get
// hit or Put update), and never decay. Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	opt     cache.Options[K, V]
	slab    *arena.Arena[K]
	buckets map[int]*arena.List[K] // frequency → keys, MRU at front
	minFreq int                    // smallest key of buckets; 0 when empty
	m       map[K]entry[V]
}

// New constructs an LFU cache. Capacity 0 yields a cache that never
// retains entries; a negative capacity returns ErrNegativeCapacity.
func New[K comparable, V any](opt cache.Options[K, V]) (*Cache[K, V], error) {
	if err := opt.Normalize(); err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		opt:     opt,
		slab:    arena.New[K](opt.Capacity),
		buckets: make(map[int]*arena.List[K]),
		m:       make(map[K]entry[V], opt.Capacity),
	}, nil
}

// Put inserts or updates k→v. An update counts as an access and goes
// through the same frequency increment as a Get hit. A new key enters
// at frequency 1, which always re-establishes minFreq = 1.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.opt.Capacity == 0 {
		return
	}
	if e, ok := c.m[k]; ok {
		e.val = v
		c.increment(k, e)
		return
	}
	if len(c.m) == c.opt.Capacity {
		c.evictMin()
	}
	b := c.bucket(1)
	h := c.slab.PushFront(b, k)
	c.m[k] = entry[V]{val: v, freq: 1, h: h}
	c.minFreq = 1
	c.opt.Metrics.Size(len(c.m))
}

// Get returns the value for k, incrementing its frequency on a hit.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	e, ok := c.m[k]
	if !ok {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.increment(k, e)
	c.opt.Metrics.Hit()
	return e.val, true
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return len(c.m) }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.opt.Capacity }

// Clear removes all entries and resets minFreq. Idempotent; does not
// fire OnEvict.
func (c *Cache[K, V]) Clear() {
	clear(c.m)
	clear(c.buckets)
	c.slab.Reset()
	c.minFreq = 0
	c.opt.Metrics.Size(0)
}

// increment is the single frequency-bump transition shared by the hit
// and update paths: move the key out of its bucket (advancing minFreq
// if that empties the minimum bucket), then insert it at the MRU end of
// the next-higher bucket.
func (c *Cache[K, V]) increment(k K, e entry[V]) {
	src := c.buckets[e.freq]
	dst := c.bucket(e.freq + 1)
	c.slab.Transfer(src, dst, e.h)
	if src.Len() == 0 {
		delete(c.buckets, e.freq)
		if c.minFreq == e.freq {
			c.minFreq = e.freq + 1
		}
	}
	e.freq++
	c.m[k] = e
}

// bucket returns the list for freq, creating it on first use.
func (c *Cache[K, V]) bucket(freq int) *arena.List[K] {
	b, ok := c.buckets[freq]
	if !ok {
		l := arena.NewList[K]()
		b = &l
		c.buckets[freq] = b
	}
	return b
}

// evictMin removes the LRU-most key of the minFreq bucket.
func (c *Cache[K, V]) evictMin() {
	b := c.buckets[c.minFreq]
	k, _ := c.slab.PopBack(b)
	if b.Len() == 0 {
		delete(c.buckets, c.minFreq)
	}
	e := c.m[k]
	delete(c.m, k)
	c.opt.Evicted(k, e.val, cache.EvictCapacity)
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
