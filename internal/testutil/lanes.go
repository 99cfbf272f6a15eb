// Package testutil holds assertions and deterministic inputs shared by the
// quad-add tests.
package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireLanesIdentical fails t unless got and want match bit for bit in
// every lane. Any NaN matches any other NaN, since payload propagation
// differs between scalar and vector units.
func RequireLanesIdentical(t testing.TB, got, want [4]float32, format string, args ...any) {
	t.Helper()
	context := fmt.Sprintf(format, args...)
	for i := range got {
		if isNaN(got[i]) && isNaN(want[i]) {
			continue
		}
		require.Equalf(t, math.Float32bits(want[i]), math.Float32bits(got[i]),
			"lane %d: got %v, want %v (%s)", i, got[i], want[i], context)
	}
}

// ULPDistance returns how many representable float32 values lie between a
// and b. NaN inputs return math.MaxUint32.
func ULPDistance(a, b float32) uint32 {
	if isNaN(a) || isNaN(b) {
		return math.MaxUint32
	}
	ia, ib := orderedBits(a), orderedBits(b)
	if ia > ib {
		return uint32(ia - ib)
	}
	return uint32(ib - ia)
}

// orderedBits maps float32 bits onto a monotonic signed integer line so
// that -0 and +0 are adjacent.
func orderedBits(f float32) int64 {
	bits := int64(math.Float32bits(f))
	if bits&0x80000000 != 0 {
		return -(bits & 0x7fffffff)
	}
	return bits
}

func isNaN(f float32) bool {
	return f != f
}
