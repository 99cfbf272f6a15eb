//go:build arm64 && !purego

// Package neon provides the NEON quad-add kernel for arm64.
package neon

// AddQuad computes dst[i] = a[i] + b[i] with a single FADD on .4S lanes.
//
// VLD1 loads element 0 into lane 0. dst may alias a or b.
func AddQuad(dst, a, b *[4]float32) {
	addQuadNEON(dst, a, b)
}

// Assembly function declarations (implemented in add_arm64.s)

//go:noescape
func addQuadNEON(dst, a, b *[4]float32)
