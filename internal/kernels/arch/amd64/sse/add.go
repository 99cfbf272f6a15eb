//go:build amd64 && !purego

// Package sse provides the SSE quad-add kernel for amd64.
package sse

// AddQuad computes dst[i] = a[i] + b[i] with a single ADDPS.
//
// Both operands are loaded with MOVUPS, which keeps memory order: element 0
// lands in the lowest lane. dst may alias a or b.
func AddQuad(dst, a, b *[4]float32) {
	addQuadSSE(dst, a, b)
}

// Assembly function declarations (implemented in add_amd64.s)

//go:noescape
func addQuadSSE(dst, a, b *[4]float32)
