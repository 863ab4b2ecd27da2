package day08

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
	assert.Equal(t, 21, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestVisible(t *testing.T) {
	g, err := parseGrid(readExample(t))
	require.NoError(t, err)

	for _, tt := range []struct {
		x, y int
		want bool
	}{
		{0, 0, true},  // edge
		{1, 1, true},  // top-left 5
		{2, 1, true},  // top-middle 5
		{3, 1, false}, // top-right 1
		{2, 2, false}, // center 3
		{3, 3, false},
	} {
		assert.Equal(t, tt.want, g.visible(tt.x, tt.y), "visible(%d, %d)", tt.x, tt.y)
	}
}

func TestScenicScore(t *testing.T) {
	g, err := parseGrid(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, 4, g.scenicScore(2, 1))
	assert.Equal(t, 8, g.scenicScore(2, 3))
	assert.Equal(t, 0, g.scenicScore(0, 0), "edge trees see nothing in one direction")
}

func TestParseGrid(t *testing.T) {
	t.Run("dimensions", func(t *testing.T) {
		g, err := parseGrid("123\n456\n")
		require.NoError(t, err)
		assert.Equal(t, 2, g.rows)
		assert.Equal(t, 3, g.cols)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := parseGrid("")
		assert.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := parseGrid("123\n45\n")
		assert.ErrorContains(t, err, "row length")
	})

	t.Run("non-digit", func(t *testing.T) {
		_, err := parseGrid("12a\n")
		assert.ErrorContains(t, err, "bad height")
	})
}
