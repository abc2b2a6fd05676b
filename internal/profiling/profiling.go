package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-frame CPU profiler for frame-level insights.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	for k := range frameTotals {
		delete(frameTotals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals all tracked durations whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the top N durations from the current frame totals.
// Example: "post.Bloom:2.1ms, camgrid.Render:1.4ms"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].dur > list[j].dur })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].dur.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", list[i].name, ms))
	}
	return strings.Join(parts, ", ")
}
