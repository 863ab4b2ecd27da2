// Package day08 surveys a rectangular grid of tree heights for visibility
// from outside and the best scenic score.
package day08

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("8a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("8b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

var ErrEmptyInput = errors.New("empty input")

// Part1 counts trees visible from outside the grid along their row or
// column.
func Part1(input string) (int, error) {
	g, err := parseGrid(input)
	if err != nil {
		return 0, err
	}
	var count int
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if g.visible(x, y) {
				count++
			}
		}
	}
	return count, nil
}

// Part2 returns the highest scenic score of any tree: the product of its
// viewing distances in the four directions.
func Part2(input string) (int, error) {
	g, err := parseGrid(input)
	if err != nil {
		return 0, err
	}
	var max int
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if score := g.scenicScore(x, y); score > max {
				max = score
			}
		}
	}
	return max, nil
}

type grid struct {
	heights    [][]int
	rows, cols int
}

var directions = [4][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// visible reports whether every tree between (x, y) and the grid edge in
// some direction is strictly shorter.
func (g *grid) visible(x, y int) bool {
	h := g.heights[y][x]
dirLoop:
	for _, d := range directions {
		for x1, y1 := x+d[0], y+d[1]; g.inBounds(x1, y1); x1, y1 = x1+d[0], y1+d[1] {
			if g.heights[y1][x1] >= h {
				continue dirLoop
			}
		}
		return true
	}
	return false
}

// scenicScore multiplies the viewing distances in all four directions. A
// viewing distance counts trees up to and including the first one at least
// as tall.
func (g *grid) scenicScore(x, y int) int {
	h := g.heights[y][x]
	score := 1
	for _, d := range directions {
		var dist int
		for x1, y1 := x+d[0], y+d[1]; g.inBounds(x1, y1); x1, y1 = x1+d[0], y1+d[1] {
			dist++
			if g.heights[y1][x1] >= h {
				break
			}
		}
		score *= dist
	}
	return score
}

func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

func parseGrid(input string) (*grid, error) {
	var heights [][]int
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := make([]int, len(line))
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("bad height %q in line %q", c, line)
			}
			row[i] = int(c - '0')
		}
		heights = append(heights, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(heights) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(heights[0])
	for _, row := range heights {
		if len(row) != cols {
			return nil, fmt.Errorf("row length %d differs from %d", len(row), cols)
		}
	}
	return &grid{heights: heights, rows: len(heights), cols: cols}, nil
}
