package cache

// EvictReason explains why an entry left the cache.
type EvictReason int

const (
	// EvictCapacity — a live entry was removed to make room for a new key.
	EvictCapacity EvictReason = iota
	// EvictGhost — a ghost (history-only) key fell off the end of an ARC
	// ghost list. No value is dropped; the key merely leaves history.
	EvictGhost
)

// String returns the reason as a short label, suitable for metrics.
func (r EvictReason) String() string {
	switch r {
	case EvictCapacity:
		return "capacity"
	case EvictGhost:
		return "ghost"
	default:
		return "unknown"
	}
}

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Hooks are invoked synchronously from Put/Get; keep implementations
// lightweight. Prometheus metric types satisfy this (see metrics/prom).
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()              {}
func (NoopMetrics) Miss()             {}
func (NoopMetrics) Evict(EvictReason) {}
func (NoopMetrics) Size(int)          {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
