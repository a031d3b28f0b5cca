package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the session
const (
	KeyAttempts    = "enhance.attempts"
	KeySuccess     = "enhance.success"
	KeyFail        = "enhance.fail"
	KeyDestroy     = "enhance.destroy"
	KeyBestLevel   = "item.best_level"
	KeyRuns        = "minigame.runs"
	KeyStops       = "minigame.stops"
	KeyLastBonus   = "minigame.last_bonus"
	KeyLastOutcome = "enhance.last_outcome"
)

// Registry is the central metrics facade
// Writers cache pointers once; reads go straight to the atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// StoreMax raises an int metric to v if v is larger
func (r *Registry) StoreMax(key string, v int64) {
	ptr := r.Ints.Get(key)
	for {
		cur := ptr.Load()
		if v <= cur || ptr.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Lines formats every metric as key=value, ints first, each group sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", key, ptr.Load()))
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", key, ptr.Get()))
	})
	r.Strings.Range(func(key string, ptr *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", key, ptr.Load()))
	})
	return lines
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
