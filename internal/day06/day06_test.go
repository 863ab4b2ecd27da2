package day06

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
	assert.Equal(t, []int{7, 5, 6, 10, 11}, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, []int{19, 23, 23, 29, 26}, got)
}

func TestFindMarker(t *testing.T) {
	for _, tt := range []struct {
		s    string
		size int
		want int
		ok   bool
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 4, 7, true},
		{"abcd", 4, 4, true},
		{"aabcd", 4, 5, true},
		{"aaaa", 4, 0, false},
		{"abc", 4, 0, false},
	} {
		got, ok := findMarker(tt.s, tt.size)
		assert.Equal(t, tt.ok, ok, "findMarker(%q, %d)", tt.s, tt.size)
		assert.Equal(t, tt.want, got, "findMarker(%q, %d)", tt.s, tt.size)
	}
}

func TestNoMarker(t *testing.T) {
	_, err := Part1("aaaaaa\n")
	assert.ErrorContains(t, err, "no 4-character marker")
}
