package cache

// Options configures a policy instance. Zero values are safe;
// defaults are applied by Normalize (which every policy constructor
// calls):
//   - nil Metrics => NoopMetrics
//
// Capacity is the entry-count limit, fixed for the instance's lifetime.
// Capacity 0 is a valid degenerate cache that never retains entries;
// a negative Capacity makes the constructor return ErrNegativeCapacity.
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of live entries.
	Capacity int

	// OnEvict is called for every live entry removed by the policy
	// (reason EvictCapacity) and for ARC ghost dropouts with the zero
	// value (reason EvictGhost). It is NOT called by Clear: explicit
	// removal of everything is not an eviction decision.
	// Callbacks run synchronously inside Put; keep them lightweight.
	OnEvict func(k K, v V, reason EvictReason)

	// Metrics receives Hit/Miss/Evict/Size signals. Nil => NoopMetrics.
	// Plug a Prometheus adapter (metrics/prom) to export them.
	Metrics Metrics
}

// Normalize validates the options and fills in defaults.
// Policy constructors call this once; user code normally doesn't.
func (o *Options[K, V]) Normalize() error {
	if o.Capacity < 0 {
		return ErrNegativeCapacity
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	return nil
}

// Evicted reports an eviction to both the callback and the metrics
// sink. Shared by the policy packages so the two sinks never drift.
func (o *Options[K, V]) Evicted(k K, v V, reason EvictReason) {
	o.Metrics.Evict(reason)
	if cb := o.OnEvict; cb != nil {
		cb(k, v, reason)
	}
}
