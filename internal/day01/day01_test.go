package day01

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readExample(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	return string(b)
}

func TestPart1(t *testing.T) {
	got, err := Part1(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, int64(24000), got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, int64(45000), got)
}

func TestParseGroupTotals(t *testing.T) {
	t.Run("empty input has no groups", func(t *testing.T) {
		totals, err := parseGroupTotals("")
		require.NoError(t, err)
		assert.Empty(t, totals)

		got, err := Part1("")
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})

	t.Run("missing trailing newline", func(t *testing.T) {
		totals, err := parseGroupTotals("1\n2\n\n3")
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 3}, totals)
	})

	t.Run("non-numeric line fails", func(t *testing.T) {
		_, err := parseGroupTotals("1000\noops\n")
		assert.ErrorContains(t, err, `"oops"`)
	})

	t.Run("fewer than three groups", func(t *testing.T) {
		got, err := Part2("5\n\n7\n")
		require.NoError(t, err)
		assert.Equal(t, int64(12), got)
	})
}
