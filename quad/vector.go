package quad

import "fmt"

// Vec128 is a 128-bit register value holding four packed float32 lanes.
// Lane 0 is the lowest-order lane.
type Vec128 struct {
	lanes [Lanes]float32
}

// LoadQuad loads q into a Vec128 in memory order: lane i holds q[i].
func LoadQuad(q Quad) Vec128 {
	return Vec128{lanes: q}
}

// SetLanes builds a Vec128 from explicit lane values, highest lane first.
// SetLanes(q[3], q[2], q[1], q[0]) equals LoadQuad(q).
func SetLanes(e3, e2, e1, e0 float32) Vec128 {
	return Vec128{lanes: [Lanes]float32{e0, e1, e2, e3}}
}

// Add returns v + u computed across all four lanes at once.
func (v Vec128) Add(u Vec128) Vec128 {
	var sum Vec128
	addQuad(&sum.lanes, &v.lanes, &u.lanes)
	return sum
}

// Lane extracts lane i. It panics if i is outside [0, Lanes).
func (v Vec128) Lane(i int) float32 {
	if i < 0 || i >= Lanes {
		panic(fmt.Sprintf("quad: lane index %d out of range [0,%d)", i, Lanes))
	}
	return v.lanes[i]
}

// Array reinterprets the register as a Quad, lane i becoming element i.
func (v Vec128) Array() Quad {
	return v.lanes
}

// VectorAdd loads a and b into 128-bit registers and adds them with one SIMD
// instruction. The result stays a register value; call Array or Lane to read
// it. No heap allocation is made.
func VectorAdd(a, b Quad) Vec128 {
	return LoadQuad(a).Add(LoadQuad(b))
}

// Implementation names the kernel VectorAdd compiles to: "sse", "neon" or
// "generic".
func Implementation() string {
	return implementation
}
