//go:build arm64 && !purego

package kernels

import (
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/arm64/neon"
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/vek"
)
