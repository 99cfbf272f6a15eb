// Package kernels exposes the quad-add kernel variants compiled into this
// build. Importing it pulls in every architecture package for the current
// GOARCH, whose init functions fill registry.Global.
package kernels

import (
	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

// Best returns the kernel the registry selects for features.
// It panics if nothing is registered, which means the generic package was
// not linked in.
func Best(features cpu.Features) registry.OpEntry {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernels: no quad-add implementation registered")
	}
	return *entry
}

// Available returns every kernel usable with features, best first.
func Available(features cpu.Features) []registry.OpEntry {
	return registry.Global.Compatible(features)
}
