// Command bench replays synthetic workloads against the replacement
// policies and reports hit rates side by side, with optional
// pprof/Prometheus endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/policycache/cache"
	"github.com/IvanBrykalov/policycache/internal/workload"
	pmet "github.com/IvanBrykalov/policycache/metrics/prom"
	"github.com/IvanBrykalov/policycache/policy/arc"
	"github.com/IvanBrykalov/policycache/policy/lfu"
	"github.com/IvanBrykalov/policycache/policy/lru"
)

type result struct {
	policy  string
	pattern string
	hits    int
	ops     int
	elapsed time.Duration
	arcP    float64 // final adaptation target; -1 for non-ARC policies
}

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 4096, "cache capacity (entries)")
		universe = flag.Int("keys", 65536, "keyspace size")
		ops      = flag.Int("ops", 1_000_000, "accesses per trace")
		policies = flag.String("policy", "all", "policy: lru | lfu | arc | all")
		patterns = flag.String("pattern", "all", "pattern: seq | loop | zipf | uniform | all")
		seed     = flag.Int64("seed", 1, "random seed (traces are deterministic per seed)")

		zipfS    = flag.Float64("zipf_s", 1.2, "Zipf s > 1 (skew)")
		zipfV    = flag.Float64("zipf_v", 1.0, "Zipf v")
		hotRatio = flag.Float64("hot_ratio", 0.9, "looping pattern: fraction of accesses to the hot set")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr; empty = disabled")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	var metrics cache.Metrics = cache.NoopMetrics{}
	if *metricsAddr != "" {
		metrics = pmet.New(nil, "policycache", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build the traces ----
	type trace struct {
		name string
		keys []int
	}
	var traces []trace
	add := func(name string, keys []int) {
		if *patterns == "all" || *patterns == name {
			traces = append(traces, trace{name, keys})
		}
	}
	add("seq", workload.Sequential(*universe, *ops))
	add("loop", workload.Looping(*seed, *capacity, *universe, *ops, *hotRatio))
	add("zipf", workload.Zipf(*seed, *universe, *ops, *zipfS, *zipfV))
	add("uniform", workload.Uniform(*seed, *universe, *ops))
	if len(traces) == 0 {
		log.Fatalf("unknown pattern: %q (use seq, loop, zipf, uniform or all)", *patterns)
	}

	names := []string{"lru", "lfu", "arc"}
	if *policies != "all" {
		names = []string{*policies}
	}

	// ---- Run the matrix: one goroutine per (policy, trace) pair.
	// Cache instances are single-threaded, so every goroutine owns its
	// own instance; the Prometheus adapter is shared (goroutine-safe).
	results := make([]result, len(names)*len(traces))
	var g errgroup.Group
	for pi, name := range names {
		for ti, tr := range traces {
			name, tr := name, tr
			slot := &results[pi*len(traces)+ti]
			g.Go(func() error {
				opt := cache.Options[int, int]{Capacity: *capacity, Metrics: metrics}
				c, arcP, err := newCache(name, opt)
				if err != nil {
					return fmt.Errorf("policy %q: %w", name, err)
				}
				start := time.Now()
				hits := workload.Replay(c, tr.keys)
				*slot = result{
					policy:  name,
					pattern: tr.name,
					hits:    hits,
					ops:     len(tr.keys),
					elapsed: time.Since(start),
					arcP:    arcP(),
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	// ---- Report ----
	fmt.Printf("cap=%d keys=%d ops=%d seed=%d\n\n", *capacity, *universe, *ops, *seed)
	fmt.Printf("%-8s %-8s %10s %12s %10s\n", "policy", "pattern", "hit-rate", "ops/s", "arc-p")
	for _, r := range results {
		rate := float64(r.hits) / float64(r.ops) * 100
		opsPerSec := float64(r.ops) / r.elapsed.Seconds()
		pCol := "-"
		if r.arcP >= 0 {
			pCol = fmt.Sprintf("%.1f", r.arcP)
		}
		fmt.Printf("%-8s %-8s %9.2f%% %12.0f %10s\n", r.policy, r.pattern, rate, opsPerSec, pCol)
	}
}

// newCache builds the named policy and a getter for ARC's adaptation
// target (a constant -1 for the others).
func newCache(name string, opt cache.Options[int, int]) (cache.Cache[int, int], func() float64, error) {
	switch name {
	case "lru":
		c, err := lru.New[int, int](opt)
		return c, func() float64 { return -1 }, err
	case "lfu":
		c, err := lfu.New[int, int](opt)
		return c, func() float64 { return -1 }, err
	case "arc":
		c, err := arc.New[int, int](opt)
		return c, c.P, err
	default:
		return nil, nil, fmt.Errorf("unknown policy %q (use lru, lfu or arc)", name)
	}
}
