// Package registry provides the implementation registry for the dispatch layer.
//
// Width-tier backends register themselves via init() functions in the dispatch
// package, one entry per tier. At runtime the highest-priority entry supported
// by the detected CPU features is selected, so AVX2-class hardware runs the
// 8-wide kernels, SSE2/NEON-class hardware the 4-wide ones, and everything
// else the scalar fallback.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered width-tier backend. Max and Min have no 8-wide
// kernel, so the vec8 entry carries the 4-wide functions for them.
type OpEntry struct {
	// Name is a human-readable identifier for this backend (e.g. "vec8").
	Name string

	// SIMDLevel is the instruction set this backend's tier is matched to.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order; higher wins. Scalar is 0,
	// 4-wide backends 10-15, 8-wide 20.
	Priority int

	// MulAdd computes dst[i] = a[i]*b[i] + c[i].
	MulAdd func(dst, a, b, c []float32)

	// Sum reduces x to the sum of its elements.
	Sum func(x []float32) float32

	// Max reduces x to its largest element.
	Max func(x []float32) float32

	// Min reduces x to its smallest element.
	Min func(x []float32) float32
}

// OpRegistry stores available backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default backend registry.
var Global = &OpRegistry{}

// Register adds a backend entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
