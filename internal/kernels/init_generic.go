//go:build purego || !(amd64 || arm64)

package kernels

import (
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"
	_ "github.com/cwbudde/algo-simdquad/internal/kernels/arch/vek"
)
