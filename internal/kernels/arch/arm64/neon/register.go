//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

// init registers the NEON kernel. Advanced SIMD is mandatory on ARMv8.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		AddQuad:   AddQuad,
	})
}
