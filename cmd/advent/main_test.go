package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1a\n")
	assert.Contains(t, out, "12b\n")
}

func TestRun(t *testing.T) {
	out, err := execute(t, "run", "1a", "../../internal/day01/testdata/example.txt")
	require.NoError(t, err)
	assert.Equal(t, "24000\n", out)
}

func TestRunUnknownSolution(t *testing.T) {
	_, err := execute(t, "run", "0x")
	assert.ErrorContains(t, err, `unknown solution "0x"`)
}

func TestRunMissingFile(t *testing.T) {
	_, err := execute(t, "run", "1a", "no-such-file.txt")
	assert.Error(t, err)
}
