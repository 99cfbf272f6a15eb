package quad

import vecmath "github.com/cwbudde/algo-vecmath"

// ReferenceAdd computes a + b in float64 and rounds each lane back to
// float32.
//
// float64 carries more than twice the float32 significand plus two bits, so
// rounding the double sum reproduces the correctly rounded single sum. The
// result must match ScalarAdd and VectorAdd bit for bit.
func ReferenceAdd(a, b Quad) Quad {
	var wa, wb, sum [Lanes]float64
	for i := range a {
		wa[i] = float64(a[i])
		wb[i] = float64(b[i])
	}
	vecmath.AddBlock(sum[:], wa[:], wb[:])

	var out Quad
	for i := range out {
		out[i] = float32(sum[i])
	}
	return out
}
