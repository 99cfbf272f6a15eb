//go:build purego || !(amd64 || arm64)

package quad

import "github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"

const implementation = "generic"

func addQuad(dst, a, b *[Lanes]float32) {
	generic.AddQuad(dst, a, b)
}
