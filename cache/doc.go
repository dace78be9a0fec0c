// Package cache defines the capability contract shared by the
// replacement policies in this module, plus the ambient pieces every
// policy carries: Options, Metrics hooks, and eviction reasons.
//
// The policies themselves live in sibling packages:
//
//   - policy/lru — recency-ordered eviction (Least Recently Used)
//   - policy/lfu — frequency-bucketed eviction with min-frequency
//     tracking (Least Frequently Used)
//   - policy/arc — Adaptive Replacement Cache: two live tiers, two
//     ghost-history tiers, and a self-tuned recency/frequency boundary
//
// Design
//
//   - Contract: all policies implement cache.Cache[K, V]
//     (Put/Get/Len/Cap/Clear). They are three independent
//     implementations of one interface, comparable head-to-head by an
//     external harness (see cmd/bench); no policy calls another.
//
//   - Storage: each policy keeps a map[K]entry for lookups plus ordered
//     key sequences backed by internal/arena — a free-list slab of list
//     nodes addressed by stable integer handles. Maps store handles, so
//     move-to-front and erase stay O(1) without aliasing pointers.
//
//   - Concurrency: instances are single-threaded on purpose. Eviction
//     decisions are whole-structure operations, so fine-grained locking
//     buys nothing; wrap an instance in a mutex if you must share it.
//
//   - Capacity: entry-count based, fixed at construction. Capacity 0 is
//     a valid cache that never retains entries.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; metrics/prom exports to Prometheus.
//
//   - Callbacks: Options.OnEvict(k, v, reason) fires for every eviction.
//
// Basic usage
//
//	c, err := lru.New[string, int](cache.Options[string, int]{Capacity: 1024})
//	if err != nil {
//	    // only possible for negative capacity
//	}
//	c.Put("a", 1)
//	if v, ok := c.Get("a"); ok {
//	    _ = v
//	}
//
// Comparing policies
//
//	for name, c := range map[string]cache.Cache[int, int]{
//	    "lru": mustCache(lru.New[int, int](opt)),
//	    "lfu": mustCache(lfu.New[int, int](opt)),
//	    "arc": mustCache(arc.New[int, int](opt)),
//	} {
//	    hits := replay(c, trace) // Get, Put on miss
//	    fmt.Println(name, hits)
//	}
//
// See cmd/bench for a complete comparison harness with synthetic
// workloads (sequential scans, looping working sets, Zipf skew).
package cache
