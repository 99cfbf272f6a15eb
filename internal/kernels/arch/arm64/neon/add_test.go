//go:build arm64 && !purego

package neon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"
)

func TestAddQuad_NEON(t *testing.T) {
	a := [4]float32{4.5, 3.0, 2.0, 1.0}
	b := [4]float32{9.0, 7.0, 6.25, 5.0}

	var dst [4]float32
	AddQuad(&dst, &a, &b)

	assert.Equal(t, [4]float32{13.5, 10.0, 8.25, 6.0}, dst)
}

// TestAddQuad_NEON_LaneOrder guards against a reversed load: lane 0 must
// hold a[0]+b[0].
func TestAddQuad_NEON_LaneOrder(t *testing.T) {
	a := [4]float32{1, 10, 100, 1000}
	b := [4]float32{2, 20, 200, 2000}

	var dst [4]float32
	AddQuad(&dst, &a, &b)

	require.Equal(t, float32(3), dst[0])
	require.Equal(t, float32(3000), dst[3])
}

func TestAddQuad_NEON_MatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 1000; n++ {
		var a, b, got, want [4]float32
		for i := range a {
			a[i] = float32(rng.NormFloat64() * 1e3)
			b[i] = float32(rng.NormFloat64() * 1e-3)
		}

		AddQuad(&got, &a, &b)
		generic.AddQuad(&want, &a, &b)

		for i := range got {
			require.Equal(t, math.Float32bits(want[i]), math.Float32bits(got[i]),
				"iteration %d lane %d: a=%v b=%v", n, i, a, b)
		}
	}
}

func TestAddQuad_NEON_Aliased(t *testing.T) {
	a := [4]float32{1, 2, 3, 4}
	AddQuad(&a, &a, &a)
	assert.Equal(t, [4]float32{2, 4, 6, 8}, a)
}

func TestAddQuad_NEON_NoAllocs(t *testing.T) {
	a := [4]float32{1, 2, 3, 4}
	b := [4]float32{5, 6, 7, 8}
	var dst [4]float32

	allocs := testing.AllocsPerRun(100, func() {
		AddQuad(&dst, &a, &b)
	})
	assert.Zero(t, allocs)
}

func BenchmarkAddQuad_NEON(b *testing.B) {
	x := [4]float32{4.5, 3.0, 2.0, 1.0}
	y := [4]float32{9.0, 7.0, 6.25, 5.0}
	var dst [4]float32

	b.ReportAllocs()
	b.SetBytes(4 * 4 * 3)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		AddQuad(&dst, &x, &y)
	}
}
