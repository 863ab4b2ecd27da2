package day09

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readExample(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestPart1(t *testing.T) {
	got, err := Part1(readExample(t, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = Part2(readExample(t, "example2.txt"))
	require.NoError(t, err)
	assert.Equal(t, 36, got)
}

func TestFollow(t *testing.T) {
	for _, tt := range []struct {
		diff, want pos
	}{
		{pos{0, 0}, pos{0, 0}},
		{pos{1, 1}, pos{0, 0}},
		{pos{0, 2}, pos{0, 1}},
		{pos{-2, 0}, pos{-1, 0}},
		{pos{2, 1}, pos{1, 1}},
		{pos{-1, -2}, pos{-1, -1}},
		{pos{2, 2}, pos{1, 1}},
		{pos{-2, 2}, pos{-1, 1}},
	} {
		assert.Equal(t, tt.want, follow(tt.diff), "follow(%v)", tt.diff)
	}
}

func TestFollowPanicsOnImpossibleOffset(t *testing.T) {
	// A gap of three cells cannot arise from single-cell head moves; it
	// signals a modeling bug, not bad input.
	assert.Panics(t, func() { follow(pos{3, 0}) })
}

func TestMoveHead(t *testing.T) {
	r := newRope(2)
	r.moveHead(pos{1, 0})
	assert.Equal(t, pos{1, 0}, r.knots[0])
	assert.Equal(t, pos{0, 0}, r.knots[1], "tail stays while adjacent")
	r.moveHead(pos{1, 0})
	assert.Equal(t, pos{2, 0}, r.knots[0])
	assert.Equal(t, pos{1, 0}, r.knots[1], "tail follows once stretched")
}

func TestParseMoves(t *testing.T) {
	moves, err := parseMoves("R 4\nU 1\n")
	require.NoError(t, err)
	assert.Equal(t, []move{{pos{1, 0}, 4}, {pos{0, 1}, 1}}, moves)

	_, err = parseMoves("N 4\n")
	assert.ErrorContains(t, err, "bad direction")
	_, err = parseMoves("R x\n")
	assert.ErrorContains(t, err, "bad step count")
	_, err = parseMoves("R\n")
	assert.ErrorContains(t, err, "bad move")
}
