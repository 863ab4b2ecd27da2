package day03

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
	assert.Equal(t, 157, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, 70, got)
}

func TestPriority(t *testing.T) {
	for _, tt := range []struct {
		item byte
		want int
	}{
		{'a', 1},
		{'z', 26},
		{'A', 27},
		{'Z', 52},
	} {
		got, err := priority(tt.item)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	_, err := priority('3')
	assert.Error(t, err)
}

func TestCommonItem(t *testing.T) {
	t.Run("single common item", func(t *testing.T) {
		item, err := commonItem("abc", "cde", "cfg")
		require.NoError(t, err)
		assert.Equal(t, byte('c'), item)
	})

	t.Run("no common item", func(t *testing.T) {
		_, err := commonItem("ab", "cd")
		assert.ErrorIs(t, err, ErrNoCommonItem)
	})

	t.Run("ambiguous common item", func(t *testing.T) {
		_, err := commonItem("ab", "ab")
		assert.ErrorIs(t, err, ErrAmbiguousCommonItem)
	})

	t.Run("repeats within one set do not count twice", func(t *testing.T) {
		item, err := commonItem("aab", "acc")
		require.NoError(t, err)
		assert.Equal(t, byte('a'), item)
	})
}

func TestBadInput(t *testing.T) {
	_, err := Part1("abc\n")
	assert.ErrorContains(t, err, "odd number of items")
	_, err = Part1("a1b2\n")
	assert.ErrorContains(t, err, "bad item")
	_, err = Part2("abcd\nefgh\n")
	assert.ErrorContains(t, err, "not a multiple of 3")
}
