package testutil

import (
	"math"
	"math/rand"
)

// DeterministicQuads returns n pairs of quads drawn from a fixed seed. Values
// span several magnitudes so sums exercise rounding, not just exact cases.
func DeterministicQuads(seed int64, n int) (as, bs [][4]float32) {
	rng := rand.New(rand.NewSource(seed))
	as = make([][4]float32, n)
	bs = make([][4]float32, n)
	for k := 0; k < n; k++ {
		for i := 0; i < 4; i++ {
			as[k][i] = randomFloat32(rng)
			bs[k][i] = randomFloat32(rng)
		}
	}
	return as, bs
}

func randomFloat32(rng *rand.Rand) float32 {
	exp := rng.Intn(41) - 20
	v := rng.Float64() * math.Pow(10, float64(exp))
	if rng.Intn(2) == 0 {
		v = -v
	}
	return float32(v)
}

// SpecialQuads returns operand pairs built from IEEE-754 edge values:
// signed zeros, infinities, subnormals and the float32 extremes.
func SpecialQuads() (as, bs [][4]float32) {
	inf := float32(math.Inf(1))
	negZero := float32(math.Copysign(0, -1))
	sub := math.Float32frombits(1)

	as = [][4]float32{
		{0, negZero, negZero, 0},
		{inf, -inf, inf, 1},
		{math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32, sub},
		{1, 1 << 24, -1, 0.1},
	}
	bs = [][4]float32{
		{negZero, negZero, 0, 0},
		{1, -1, inf, -inf},
		{math.MaxFloat32, -math.MaxFloat32, sub, sub},
		{math.Nextafter32(1, 2) - 1, 1, 1, 0.2},
	}
	return as, bs
}
