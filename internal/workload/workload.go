// Package workload generates deterministic synthetic access traces for
// comparing replacement policies head-to-head, and replays them against
// the cache contract.
//
// All generators are seeded; the same seed always yields the same
// trace, so hit rates are reproducible across runs and machines.
package workload

import (
	"math/rand"

	"github.com/IvanBrykalov/policycache/cache"
)

// Sequential returns a cyclic scan 0,1,…,universe-1,0,… of length n.
// Scans are the classic LRU killer: every key is touched exactly once
// per cycle.
func Sequential(universe, n int) []int {
	trace := make([]int, n)
	for i := range trace {
		trace[i] = i % universe
	}
	return trace
}

// Looping mixes a hot working set with cold background traffic:
// with probability hotRatio a key is drawn from [0, hotSize), otherwise
// from [hotSize, universe). Frequency-aware policies shine here.
func Looping(seed int64, hotSize, universe, n int, hotRatio float64) []int {
	r := rand.New(rand.NewSource(seed))
	hot := max(1, hotSize)
	cold := max(1, universe-hot)
	trace := make([]int, n)
	for i := range trace {
		if r.Float64() < hotRatio {
			trace[i] = r.Intn(hot)
		} else {
			trace[i] = hot + r.Intn(cold)
		}
	}
	return trace
}

// Zipf returns a skewed trace over [0, universe) with Zipf parameters
// s (>1) and v (>=1); larger s concentrates accesses on fewer keys.
func Zipf(seed int64, universe, n int, s, v float64) []int {
	r := rand.New(rand.NewSource(seed))
	z := rand.NewZipf(r, s, v, uint64(max(universe, 2)-1))
	trace := make([]int, n)
	for i := range trace {
		trace[i] = int(z.Uint64())
	}
	return trace
}

// Uniform returns n independent uniform draws from [0, universe).
func Uniform(seed int64, universe, n int) []int {
	r := rand.New(rand.NewSource(seed))
	trace := make([]int, n)
	for i := range trace {
		trace[i] = r.Intn(universe)
	}
	return trace
}

// Replay drives c with trace in the standard demand-fill pattern:
// Get each key, Put it on a miss. Returns the number of hits.
func Replay(c cache.Cache[int, int], trace []int) int {
	hits := 0
	for _, k := range trace {
		if _, ok := c.Get(k); ok {
			hits++
		} else {
			c.Put(k, k)
		}
	}
	return hits
}

// HitRate is Replay expressed as a fraction of the trace length.
func HitRate(c cache.Cache[int, int], trace []int) float64 {
	if len(trace) == 0 {
		return 0
	}
	return float64(Replay(c, trace)) / float64(len(trace))
}
