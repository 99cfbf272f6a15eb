package generic

import (
	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

// init registers the lane loop as the baseline every CPU can run.
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		AddQuad:   AddQuad,
	})
}
