//go:build amd64 && !purego

package quad

import "github.com/cwbudde/algo-simdquad/internal/kernels/arch/amd64/sse"

const implementation = "sse"

func addQuad(dst, a, b *[Lanes]float32) {
	sse.AddQuad(dst, a, b)
}
