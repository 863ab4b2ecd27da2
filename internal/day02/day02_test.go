package day02

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
	assert.Equal(t, 15, got)
}

func TestPart2(t *testing.T) {
	got, err := Part2(readExample(t))
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestShapeAgainst(t *testing.T) {
	for _, tt := range []struct {
		me, elf shape
		want    outcome
	}{
		{rock, rock, draw},
		{rock, scissors, won},
		{rock, paper, lost},
		{paper, rock, won},
		{scissors, paper, won},
	} {
		assert.Equal(t, tt.want, tt.me.against(tt.elf))
	}
}

func TestOutcomeDeduce(t *testing.T) {
	// Deducing a shape and playing it must produce the wanted outcome.
	for _, elf := range []shape{rock, paper, scissors} {
		for _, want := range []outcome{lost, draw, won} {
			me := want.deduce(elf)
			assert.Equal(t, want, me.against(elf))
		}
	}
}

func TestBadRounds(t *testing.T) {
	_, err := Part1("A Y B\n")
	assert.ErrorContains(t, err, "bad round")
	_, err = Part1("Q Y\n")
	assert.ErrorContains(t, err, "bad shape")
	_, err = Part2("A A\n")
	assert.ErrorContains(t, err, "bad outcome")
}
