package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireLanesIdentical(t *testing.T) {
	nan := float32(math.NaN())
	RequireLanesIdentical(t, [4]float32{1, 2, nan, 4}, [4]float32{1, 2, nan, 4}, "with NaN")
}

func TestULPDistance(t *testing.T) {
	assert.Zero(t, ULPDistance(1, 1))
	assert.Equal(t, uint32(1), ULPDistance(1, math.Nextafter32(1, 2)))
	assert.Equal(t, uint32(0), ULPDistance(0, float32(math.Copysign(0, -1))))
	assert.Equal(t, uint32(2), ULPDistance(math.Float32frombits(1), -math.Float32frombits(1)))
	assert.Equal(t, uint32(math.MaxUint32), ULPDistance(float32(math.NaN()), 1))
}

func TestDeterministicQuads(t *testing.T) {
	a1, b1 := DeterministicQuads(42, 16)
	a2, b2 := DeterministicQuads(42, 16)
	require.Len(t, a1, 16)
	require.Len(t, b1, 16)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)

	a3, _ := DeterministicQuads(43, 16)
	assert.NotEqual(t, a1, a3)

	for k := range a1 {
		for i := range a1[k] {
			assert.False(t, math.IsNaN(float64(a1[k][i])))
			assert.False(t, math.IsInf(float64(a1[k][i]), 0))
		}
	}
}

func TestSpecialQuads(t *testing.T) {
	as, bs := SpecialQuads()
	require.Equal(t, len(as), len(bs))
	require.NotEmpty(t, as)
}
