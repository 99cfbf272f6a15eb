// Package quad adds pairs of four-lane float32 values in two ways.
//
// ScalarAdd walks the lanes one at a time and hands back a freshly allocated
// result. VectorAdd loads both operands into a 128-bit register and adds all
// four lanes with one instruction:
//
//   - amd64: MOVUPS + ADDPS (SSE, part of the x86-64 baseline)
//   - arm64: VLD1 + FADD .4S + VST1 (NEON, mandatory on ARMv8)
//   - purego tag or other architectures: pure Go lane loop
//
// Both paths produce bit-identical results for every input, so the only
// difference left between them is speed.
//
// # Lane order
//
// LoadQuad places element 0 of the quad in lane 0. SetLanes takes its
// arguments highest lane first, mirroring the set/setr split of the x86
// intrinsics; feeding it a quad in memory order silently reverses the sum.
package quad
