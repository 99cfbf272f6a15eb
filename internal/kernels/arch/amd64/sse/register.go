//go:build amd64 && !purego

package sse

import (
	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

// init registers the SSE kernel. SSE2 is the x86-64 baseline, so this entry
// is selected on every amd64 CPU unless generic kernels are forced.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		AddQuad:   AddQuad,
	})
}
