package vek

import (
	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

// init registers the vek kernel for the survey. vek does its own CPU
// dispatch, so it requires no SIMD level here.
//
// Priority: -5 (below generic; never selected automatically)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "vek",
		SIMDLevel: cpu.SIMDNone,
		Priority:  -5,
		AddQuad:   AddQuad,
	})
}
