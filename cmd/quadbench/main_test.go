package main

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var defaultReport = regexp.MustCompile(`^Sum: 13\.50, 10\.00, 8\.25, 6\.00\n` +
	`Sum \(vector\): 13\.50, 10\.00, 8\.25, 6\.00\n` +
	`\n` +
	`Non-vectorized time \(microsec\): \d{2,}\n` +
	`Vectorized time \(microsec\): \d{2,}\n` +
	`\n$`)

func TestRoot_NoArguments(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Regexp(t, defaultReport, out)
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestKernels(t *testing.T) {
	out, err := execute(t, "kernels")
	require.NoError(t, err)
	assert.Contains(t, out, "Kernel")
	assert.Contains(t, out, "generic")
	assert.Contains(t, out, "vek")
	assert.NotRegexp(t, `\sNO\s`, out)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "quadbench v0.1.0 (dev) built unknown\n", out)
}
