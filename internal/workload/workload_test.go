package workload

import "testing"

func TestGenerators_DeterministicAndInRange(t *testing.T) {
	t.Parallel()

	const universe, n = 100, 5000
	traces := map[string][]int{
		"seq":     Sequential(universe, n),
		"loop":    Looping(7, 10, universe, n, 0.8),
		"zipf":    Zipf(7, universe, n, 1.2, 1),
		"uniform": Uniform(7, universe, n),
	}
	again := map[string][]int{
		"seq":     Sequential(universe, n),
		"loop":    Looping(7, 10, universe, n, 0.8),
		"zipf":    Zipf(7, universe, n, 1.2, 1),
		"uniform": Uniform(7, universe, n),
	}

	for name, tr := range traces {
		if len(tr) != n {
			t.Fatalf("%s: len = %d, want %d", name, len(tr), n)
		}
		for i, k := range tr {
			if k < 0 || k >= universe {
				t.Fatalf("%s[%d] = %d, outside [0,%d)", name, i, k, universe)
			}
			if again[name][i] != k {
				t.Fatalf("%s: not deterministic at index %d", name, i)
			}
		}
	}
}

func TestLooping_FavorsHotSet(t *testing.T) {
	t.Parallel()

	const hot, universe, n = 10, 1000, 20000
	tr := Looping(1, hot, universe, n, 0.9)
	inHot := 0
	for _, k := range tr {
		if k < hot {
			inHot++
		}
	}
	// 90% nominal; allow generous slack for the seeded draw.
	if got := float64(inHot) / n; got < 0.85 || got > 0.95 {
		t.Fatalf("hot fraction = %.3f, want ≈0.9", got)
	}
}

// countingCache records the Get/Put sequence so Replay's demand-fill
// contract can be checked without a real policy.
type countingCache struct {
	data map[int]int
	gets int
	puts int
}

func (c *countingCache) Get(k int) (int, bool) { c.gets++; v, ok := c.data[k]; return v, ok }
func (c *countingCache) Put(k, v int)          { c.puts++; c.data[k] = v }
func (c *countingCache) Len() int              { return len(c.data) }
func (c *countingCache) Cap() int              { return 0 }
func (c *countingCache) Clear()                { clear(c.data) }

func TestReplay_DemandFill(t *testing.T) {
	t.Parallel()

	c := &countingCache{data: make(map[int]int)}
	trace := []int{1, 2, 1, 3, 2, 2}
	hits := Replay(c, trace)

	if hits != 3 {
		t.Fatalf("hits = %d, want 3", hits)
	}
	if c.gets != len(trace) {
		t.Fatalf("gets = %d, want %d", c.gets, len(trace))
	}
	if c.puts != 3 { // one per distinct key, misses only
		t.Fatalf("puts = %d, want 3", c.puts)
	}
}

func TestHitRate_EmptyTrace(t *testing.T) {
	t.Parallel()

	c := &countingCache{data: make(map[int]int)}
	if got := HitRate(c, nil); got != 0 {
		t.Fatalf("HitRate(empty) = %v, want 0", got)
	}
}
