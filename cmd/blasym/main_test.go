package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveTranspose(t *testing.T) {
	out, err := runCommand(t, "transpose", "complex_conjugate")
	require.NoError(t, err)
	assert.Equal(t, "complex_conjugate\tcblas=113\tlapack=C\n", out)
}

func TestResolveLooseValues(t *testing.T) {
	// "false" and "nil" reach the translator as the loose values a
	// dynamic caller would pass, not as tokens.
	out, err := runCommand(t, "transpose", "false")
	require.NoError(t, err)
	assert.Contains(t, out, "no_transpose")

	out, err = runCommand(t, "evd-job", "nil")
	require.NoError(t, err)
	assert.Equal(t, "n\tlapack=N\n", out)
}

func TestLapackOnlyOutput(t *testing.T) {
	out, err := runCommand(t, "--lapack", "svd-job", "overwrite", "none")
	require.NoError(t, err)
	assert.Equal(t, "O\nN\n", out)
}

func TestCBLASOnlyOutput(t *testing.T) {
	out, err := runCommand(t, "--cblas", "order", "column_major")
	require.NoError(t, err)
	assert.Equal(t, "102\n", out)
}

func TestConventionMismatch(t *testing.T) {
	// SVD jobs exist only in the character convention.
	_, err := runCommand(t, "--cblas", "svd-job", "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CBLAS enum form")
}

func TestInvalidTokenFailsWithVocabulary(t *testing.T) {
	_, err := runCommand(t, "side", "top")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected left or right")
}
