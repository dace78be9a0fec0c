package lru

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/IvanBrykalov/policycache/cache"
)

// recorder is a Metrics test double counting every signal.
type recorder struct {
	hits, misses, evicts int
	lastSize             int
}

func (r *recorder) Hit()                    { r.hits++ }
func (r *recorder) Miss()                   { r.misses++ }
func (r *recorder) Evict(cache.EvictReason) { r.evicts++ }
func (r *recorder) Size(n int)              { r.lastSize = n }

func newLRU(t *testing.T, capacity int) *Cache[int, string] {
	t.Helper()
	c, err := New[int, string](cache.Options[int, string]{Capacity: capacity})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestLRU_NegativeCapacity(t *testing.T) {
	t.Parallel()

	if _, err := New[int, int](cache.Options[int, int]{Capacity: -1}); !errors.Is(err, cache.ErrNegativeCapacity) {
		t.Fatalf("want ErrNegativeCapacity, got %v", err)
	}
}

// Put of an existing key must replace the value without growing the cache.
func TestLRU_UpdateNotDuplicate(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 4)
	c.Put(1, "v1")
	c.Put(1, "v2")
	if c.Len() != 1 {
		t.Fatalf("Len = %d after update, want 1", c.Len())
	}
	if v, ok := c.Get(1); !ok || v != "v2" {
		t.Fatalf("Get = %q,%v want v2,true", v, ok)
	}
}

// Accessing key 1 promotes it, so a subsequent insert evicts key 2
// (the new least-recently-used), never key 1.
func TestLRU_RecencyEviction(t *testing.T) {
	t.Parallel()

	const capacity = 3
	c := newLRU(t, capacity)
	for i := 1; i <= capacity; i++ {
		c.Put(i, "v")
	}
	if _, ok := c.Get(1); !ok {
		t.Fatal("expected hit for key 1")
	}
	c.Put(4, "v")

	if _, ok := c.Get(2); ok {
		t.Fatal("key 2 must be evicted")
	}
	for _, k := range []int{1, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Fatalf("key %d must survive", k)
		}
	}
}

// An update counts as recent use.
func TestLRU_UpdateRefreshesRecency(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 2)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(1, "a2") // 1 becomes MRU, 2 is now the tail
	c.Put(3, "c")

	if _, ok := c.Get(2); ok {
		t.Fatal("key 2 must be evicted")
	}
	if v, ok := c.Get(1); !ok || v != "a2" {
		t.Fatalf("Get(1) = %q,%v want a2,true", v, ok)
	}
}

func TestLRU_ZeroCapacity(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 0)
	c.Put(1, "x")
	if _, ok := c.Get(1); ok {
		t.Fatal("capacity-0 cache must not retain entries")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestLRU_Clear(t *testing.T) {
	t.Parallel()

	c := newLRU(t, 4)
	for i := 0; i < 4; i++ {
		c.Put(i, "v")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Fatalf("Len = %d after Clear, want 0", c.Len())
	}
	for i := 0; i < 4; i++ {
		if _, ok := c.Get(i); ok {
			t.Fatalf("key %d present after Clear", i)
		}
	}
	// Idempotent, and the cache stays usable.
	c.Clear()
	c.Put(9, "v")
	if v, ok := c.Get(9); !ok || v != "v" {
		t.Fatalf("cache unusable after Clear: %q,%v", v, ok)
	}
}

// Len() ≤ capacity must hold after every Put, for an arbitrary op mix.
func TestLRU_CapacityInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 8
	c := newLRU(t, capacity)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10_000; i++ {
		k := r.Intn(64)
		if r.Intn(2) == 0 {
			c.Put(k, "v")
		} else {
			c.Get(k)
		}
		if c.Len() > capacity {
			t.Fatalf("Len = %d exceeds capacity %d at op %d", c.Len(), capacity, i)
		}
	}
}

func TestLRU_OnEvictAndMetrics(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	var evicted []int
	c, err := New[int, string](cache.Options[int, string]{
		Capacity: 2,
		Metrics:  rec,
		OnEvict: func(k int, _ string, reason cache.EvictReason) {
			if reason != cache.EvictCapacity {
				t.Errorf("unexpected reason %v", reason)
			}
			evicted = append(evicted, k)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	c.Put(1, "a")
	c.Put(2, "b")
	c.Get(1)
	c.Get(99)
	c.Put(3, "c") // evicts 2

	if len(evicted) != 1 || evicted[0] != 2 {
		t.Fatalf("evicted = %v, want [2]", evicted)
	}
	if rec.hits != 1 || rec.misses != 1 || rec.evicts != 1 {
		t.Fatalf("metrics = %+v, want 1 hit / 1 miss / 1 evict", rec)
	}
	if rec.lastSize != 2 {
		t.Fatalf("lastSize = %d, want 2", rec.lastSize)
	}
}
