//go:build arm64 && !purego

package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-simdquad/internal/cpu"
	"github.com/cwbudde/algo-simdquad/internal/kernels/registry"
)

func TestRegistryIntegration_ARM64(t *testing.T) {
	entries := registry.Global.ListEntries()
	require.NotEmpty(t, entries, "init() functions not running")

	names := make(map[string]bool)
	for _, e := range entries {
		t.Logf("  - %s (priority %d, level %s)", e.Name, e.Priority, e.SIMDLevel)
		names[e.Name] = true
	}
	assert.True(t, names["generic"])
	assert.True(t, names["neon"])
	assert.True(t, names["vek"])

	assert.Equal(t, "neon", Best(cpu.Features{HasNEON: true}).Name)
}
