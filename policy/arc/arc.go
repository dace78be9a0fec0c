// Package arc implements the Adaptive Replacement Cache.
//
// ARC splits live entries into a recency tier T1 (keys seen once
// recently) and a frequency tier T2 (keys seen at least twice), and
// remembers recently evicted keys in two ghost lists, B1 and B2, that
// hold no values. A hit in a ghost list is a near-miss: evidence that
// the tier the key was evicted from is under-sized. The target size p
// of T1 moves on exactly those hits — there is no decay or time-based
// aging — so the recency/frequency boundary tunes itself to the
// workload.
package arc

import (
	"github.com/IvanBrykalov/policycache/cache"
	"github.com/IvanBrykalov/policycache/internal/arena"
)

// tier identifies which of the four lists a key currently occupies.
// A key is a member of at most one tier at any instant.
type tier uint8

const (
	tierT1 tier = iota // live, seen once recently
	tierT2             // live, seen at least twice
	tierB1             // ghost, evicted from T1
	tierB2             // ghost, evicted from T2
)

type entry[V any] struct {
	val V // zero for ghosts
	h   arena.Handle
	loc tier
}

// Cache is an ARC instance. Only T1 ∪ T2 hold values; B1 ∪ B2 are
// key-only history. |T1|+|T2| never exceeds the capacity.
// Not safe for concurrent use.
type Cache[K comparable, V any] struct {
	opt  cache.Options[K, V]
	slab *arena.Arena[K]

	t1, t2 arena.List[K] // live tiers, MRU at front
	b1, b2 arena.List[K] // ghost tiers, MRU at front

	// p is the target size of T1, in [0, capacity]. Mutated only on
	// ghost-list hits.
	p float64

	m map[K]entry[V] // membership across all four tiers
}

// New constructs an ARC cache. Capacity 0 yields a cache that never
// retains entries; a negative capacity returns ErrNegativeCapacity.
func New[K comparable, V any](opt cache.Options[K, V]) (*Cache[K, V], error) {
	if err := opt.Normalize(); err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		opt:  opt,
		slab: arena.New[K](2 * opt.Capacity), // live + ghost metadata
		t1:   arena.NewList[K](),
		t2:   arena.NewList[K](),
		b1:   arena.NewList[K](),
		b2:   arena.NewList[K](),
		m:    make(map[K]entry[V], 2*opt.Capacity),
	}, nil
}

// Get returns the value for k if it is live. A T1 hit promotes the key
// to T2 (it was reused); a T2 hit re-promotes it to T2's MRU position.
// Ghost membership is not a hit: the value is gone.
func (c *Cache[K, V]) Get(k K) (V, bool) {
	e, ok := c.m[k]
	if !ok || e.loc == tierB1 || e.loc == tierB2 {
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.promote(k, e)
	c.opt.Metrics.Hit()
	return e.val, true
}

// Put inserts or updates k→v.
//
// Four cases: a live key is updated in place and promoted to T2 MRU; a
// B1 ghost grows p and is re-admitted to T2; a B2 ghost shrinks p and
// is re-admitted to T2; a brand-new key enters T1 after the directory
// makes room.
func (c *Cache[K, V]) Put(k K, v V) {
	if c.opt.Capacity == 0 {
		return
	}
	if e, ok := c.m[k]; ok {
		switch e.loc {
		case tierT1, tierT2:
			e.val = v
			c.promote(k, e)
		case tierB1:
			c.ghostHit(k, v, e, true)
		case tierB2:
			c.ghostHit(k, v, e, false)
		}
		return
	}
	c.admit(k, v)
}

// Len returns the number of live entries (ghosts excluded).
func (c *Cache[K, V]) Len() int { return c.t1.Len() + c.t2.Len() }

// Cap returns the fixed capacity.
func (c *Cache[K, V]) Cap() int { return c.opt.Capacity }

// P returns the current target size of T1. Useful for observing how
// the cache has adapted: p near Cap() means recency is winning, p near
// 0 means frequency is.
func (c *Cache[K, V]) P() float64 { return c.p }

// Clear empties all four lists and resets p to 0. Idempotent; does not
// fire OnEvict.
func (c *Cache[K, V]) Clear() {
	clear(c.m)
	c.slab.Reset()
	c.t1.Reset()
	c.t2.Reset()
	c.b1.Reset()
	c.b2.Reset()
	c.p = 0
	c.opt.Metrics.Size(0)
}

// promote moves a live key to T2's MRU position, updating the value
// carried in e.
func (c *Cache[K, V]) promote(k K, e entry[V]) {
	if e.loc == tierT1 {
		c.slab.Transfer(&c.t1, &c.t2, e.h)
		e.loc = tierT2
	} else {
		c.slab.MoveToFront(&c.t2, e.h)
	}
	c.m[k] = e
}

// ghostHit re-admits a key whose history lives in B1 or B2. The delta
// is the floating-point ratio of the opposite ghost list to the hit
// one, floored at 1, so the rarer the hit the bigger the step.
func (c *Cache[K, V]) ghostHit(k K, v V, e entry[V], fromB1 bool) {
	capf := float64(c.opt.Capacity)
	if fromB1 {
		// Recency tier under-sized: grow p toward capacity.
		delta := max(1, float64(c.b2.Len())/float64(max(1, c.b1.Len())))
		c.p = min(capf, c.p+delta)
		c.slab.Remove(&c.b1, e.h)
	} else {
		// Frequency tier under-sized: shrink p toward zero.
		delta := max(1, float64(c.b1.Len())/float64(max(1, c.b2.Len())))
		c.p = max(0, c.p-delta)
		c.slab.Remove(&c.b2, e.h)
	}
	// The ghost is removed before the replacement step so the ghost-cap
	// trim inside replace can never drop the key being re-admitted.
	c.replace(!fromB1)
	h := c.slab.PushFront(&c.t2, k)
	c.m[k] = entry[V]{val: v, h: h, loc: tierT2}
	c.opt.Metrics.Size(c.Len())
}

// admit inserts a key that is in none of the four lists. The directory
// (live + ghost) is trimmed first: if the recency side T1 ∪ B1 fills
// the capacity, age it; otherwise, once the whole directory reaches the
// capacity, run a replacement step (dropping the oldest B2 ghost when
// the directory is at its 2·capacity bound).
func (c *Cache[K, V]) admit(k K, v V) {
	capN := c.opt.Capacity
	t1Len, b1Len := c.t1.Len(), c.b1.Len()
	switch {
	case t1Len+b1Len >= capN:
		if t1Len < capN {
			c.dropGhostTail(&c.b1)
			c.replace(false)
		} else {
			// T1 alone fills the cache: a cold key goes out with no
			// ghost retained.
			kk := c.slab.Remove(&c.t1, c.t1.Back())
			e := c.m[kk]
			delete(c.m, kk)
			c.opt.Evicted(kk, e.val, cache.EvictCapacity)
		}
	case t1Len+c.t2.Len()+b1Len+c.b2.Len() >= capN:
		if t1Len+c.t2.Len()+b1Len+c.b2.Len() >= 2*capN {
			c.dropGhostTail(&c.b2)
		}
		c.replace(false)
	}
	h := c.slab.PushFront(&c.t1, k)
	c.m[k] = entry[V]{val: v, h: h, loc: tierT1}
	c.opt.Metrics.Size(c.Len())
}

// replace evicts one live entry, choosing the tier by p: T1's tail goes
// when T1 exceeds its target (or meets it exactly on a B2 hit, which
// favors T2); otherwise T2's tail goes. The evicted key becomes the MRU
// ghost of the matching history list.
func (c *Cache[K, V]) replace(inB2 bool) {
	t1Len := float64(c.t1.Len())
	if c.t1.Len() > 0 && (t1Len > c.p || (inB2 && t1Len == c.p)) {
		c.evictLive(&c.t1, &c.b1, tierB1)
	} else if c.t2.Len() > 0 {
		c.evictLive(&c.t2, &c.b2, tierB2)
	}
}

// evictLive drops the value of src's tail and pushes its key to the
// ghost list, which is in turn capped at capacity (oldest ghost first).
func (c *Cache[K, V]) evictLive(src, ghost *arena.List[K], ghostLoc tier) {
	h := src.Back()
	k := c.slab.Key(h)
	e := c.m[k]
	c.slab.Transfer(src, ghost, h)
	c.m[k] = entry[V]{h: h, loc: ghostLoc}
	c.opt.Evicted(k, e.val, cache.EvictCapacity)
	if ghost.Len() > c.opt.Capacity {
		c.dropGhostTail(ghost)
	}
}

// dropGhostTail forgets the oldest ghost of l entirely.
func (c *Cache[K, V]) dropGhostTail(l *arena.List[K]) {
	k, ok := c.slab.PopBack(l)
	if !ok {
		return
	}
	delete(c.m, k)
	var zero V
	c.opt.Evicted(k, zero, cache.EvictGhost)
}

var _ cache.Cache[int, int] = (*Cache[int, int])(nil)
