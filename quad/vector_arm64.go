//go:build arm64 && !purego

package quad

import "github.com/cwbudde/algo-simdquad/internal/kernels/arch/arm64/neon"

const implementation = "neon"

func addQuad(dst, a, b *[Lanes]float32) {
	neon.AddQuad(dst, a, b)
}
