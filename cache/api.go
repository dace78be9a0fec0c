package cache

// Cache is the capability contract shared by every replacement policy
// in this module (LRU, LFU, ARC). A policy instance is a fixed-capacity
// key/value store that decides which entry to evict when full.
//
// Instances are NOT safe for concurrent use; callers that share a cache
// across goroutines must serialize access externally (one mutex per
// instance). Every operation is a total, non-blocking function of the
// current state: amortized O(1) map work plus constant-time list
// adjustments.
type Cache[K comparable, V any] interface {
	// Put inserts or updates k→v. Updating an existing key replaces the
	// value in place and counts as an access for the policy (promotion,
	// frequency increment, tier move). Inserting a new key into a full
	// cache triggers at most one eviction.
	Put(k K, v V)

	// Get returns the value for k and a presence flag. On hit, the
	// entry is promoted according to the policy; a miss has no side
	// effects and is a normal outcome, not an error.
	Get(k K) (V, bool)

	// Len returns the number of live entries. Ghost/history entries
	// (ARC's B1/B2) are never counted.
	Len() int

	// Cap returns the fixed capacity set at construction.
	Cap() int

	// Clear removes all live and history state and resets any
	// adaptation parameter to its initial value. Idempotent.
	Clear()
}
