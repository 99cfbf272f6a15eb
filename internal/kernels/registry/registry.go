// Package registry holds the quad-add kernel variants available to this build.
//
// Architecture packages register an OpEntry from init(). Lookup picks the
// highest-priority entry the CPU supports; ListEntries exposes every variant
// for the kernel survey.
package registry

import (
	"sort"
	"sync"

	"github.com/cwbudde/algo-simdquad/internal/cpu"
)

// QuadFunc adds two 4-lane float32 blocks: dst[i] = a[i] + b[i].
type QuadFunc func(dst, a, b *[4]float32)

// OpEntry is one registered kernel variant.
type OpEntry struct {
	// Name identifies the variant ("generic", "sse", "neon", "vek").
	Name string

	// SIMDLevel is the instruction set the variant requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants, higher first:
	//   - library kernels: -5
	//   - generic: 0
	//   - SSE: 10
	//   - NEON: 15
	Priority int

	// AddQuad is the kernel itself.
	AddQuad QuadFunc
}

// OpRegistry manages registration and lookup of kernel variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry populated by the arch packages' init functions.
var Global = &OpRegistry{}

// Register adds entry to the registry. Registrations should complete before
// the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// when nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := r.entries[i]
		if entry.AddQuad != nil && cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}
	return nil
}

// Compatible returns every entry usable with features, highest priority first.
func (r *OpRegistry) Compatible(features cpu.Features) []OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []OpEntry
	for _, entry := range r.entries {
		if entry.AddQuad != nil && cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}

// ListEntries returns a copy of all registered entries, highest priority first.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *OpRegistry) sortOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	// Stable so equal priorities keep registration order.
	sort.SliceStable(r.entries, func(i, j int) bool {
		return r.entries[i].Priority > r.entries[j].Priority
	})
	r.sorted = true
}
