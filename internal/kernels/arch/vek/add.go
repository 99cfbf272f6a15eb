// Package vek adapts github.com/viterin/vek to the quad-add kernel shape.
//
// vek dispatches to its own AVX2 assembly when the CPU has it and to pure Go
// otherwise. At four lanes its slice bookkeeping dominates, which is exactly
// what the kernel survey is meant to show.
package vek

import "github.com/viterin/vek/vek32"

// AddQuad computes dst[i] = a[i] + b[i] through vek32.Add_Into.
func AddQuad(dst, a, b *[4]float32) {
	vek32.Add_Into(dst[:], a[:], b[:])
}

// Accelerated reports whether vek found a SIMD backend on this CPU.
func Accelerated() bool {
	return vek32.Info().Acceleration
}

// Features lists the CPU features vek detected.
func Features() []string {
	return vek32.Info().CPUFeatures
}
