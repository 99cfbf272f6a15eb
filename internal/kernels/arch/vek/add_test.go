package vek

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-simdquad/internal/kernels/arch/generic"
)

func TestAddQuad(t *testing.T) {
	a := [4]float32{4.5, 3.0, 2.0, 1.0}
	b := [4]float32{9.0, 7.0, 6.25, 5.0}

	var dst [4]float32
	AddQuad(&dst, &a, &b)

	assert.Equal(t, [4]float32{13.5, 10.0, 8.25, 6.0}, dst)
}

func TestAddQuad_MatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for n := 0; n < 500; n++ {
		var a, b, got, want [4]float32
		for i := range a {
			a[i] = float32(rng.Float64()*200 - 100)
			b[i] = float32(rng.Float64()*2 - 1)
		}

		AddQuad(&got, &a, &b)
		generic.AddQuad(&want, &a, &b)

		for i := range got {
			require.Equal(t, math.Float32bits(want[i]), math.Float32bits(got[i]), "lane %d", i)
		}
	}
}
