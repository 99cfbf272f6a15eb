//go:build amd64 && !purego

package kernels

import (
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/amd64/sse"
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/vek"
)
