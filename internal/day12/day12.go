// Package day12 finds shortest paths over a letter-height topology grid
// with a breadth-first search parameterized by start, step, and goal
// predicates. The same walk answers both directions: climbing from S to E,
// or descending from E to any lowest cell with the step rule inverted.
package day12

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("12a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("12b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

var (
	ErrEmptyInput   = errors.New("empty input")
	ErrNoStartFound = errors.New("no start found")
	ErrNoPathFound  = errors.New("no path found")
)

// Part1 returns the number of steps on the shortest climb from S to E,
// where each step may rise by at most one.
func Part1(input string) (int, error) {
	topo, err := parseTopology(input)
	if err != nil {
		return 0, err
	}
	path, err := topo.shortestPath(
		func(c cell) bool { return c == 'S' },
		func(cur, nb cell) bool { return nb.height() <= cur.height()+1 },
		func(c cell) bool { return c == 'E' },
	)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// Part2 returns the number of steps on the shortest descent from E to any
// lowest cell. Reversing the walk inverts the step rule: a descent step may
// drop by at most one.
func Part2(input string) (int, error) {
	topo, err := parseTopology(input)
	if err != nil {
		return 0, err
	}
	path, err := topo.shortestPath(
		func(c cell) bool { return c == 'E' },
		func(cur, nb cell) bool { return nb.height() >= cur.height()-1 },
		func(c cell) bool { return c.height() == 0 },
	)
	if err != nil {
		return 0, err
	}
	return len(path) - 1, nil
}

// A cell is 'S', 'E', or a height letter 'a' through 'z'.
type cell byte

// height is the cell's ordinal height: 'a' is 0, 'z' is 25, with the start
// marker at the lowest height and the end marker at the highest.
func (c cell) height() int {
	switch c {
	case 'S':
		return 0
	case 'E':
		return 'z' - 'a'
	}
	return int(c - 'a')
}

type pos struct {
	x, y int
}

type topology struct {
	cells      [][]cell
	rows, cols int
}

func (t *topology) at(p pos) cell { return t.cells[p.y][p.x] }

// Neighbor offsets in a fixed order: up, down, right, left.
var neighborDeltas = [4]pos{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// neighbors appends the bounds-checked 4-directional neighbors of p to buf.
func (t *topology) neighbors(buf []pos, p pos) []pos {
	for _, d := range neighborDeltas {
		q := pos{p.x + d.x, p.y + d.y}
		if q.x >= 0 && q.x < t.cols && q.y >= 0 && q.y < t.rows {
			buf = append(buf, q)
		}
	}
	return buf
}

// find returns the first cell satisfying pred in row-major scan order.
func (t *topology) find(pred func(cell) bool) (pos, bool) {
	for y, row := range t.cells {
		for x, c := range row {
			if pred(c) {
				return pos{x, y}, true
			}
		}
	}
	return pos{}, false
}

// shortestPath runs a frontier-by-frontier breadth-first search from the
// first cell satisfying start. A neighbor joins the next frontier only if
// step(current, neighbor) holds and it was not reached in an earlier
// frontier. The search stops at the first frontier containing a goal cell
// and reconstructs the path from the predecessors recorded at discovery,
// returned start to goal inclusive.
func (t *topology) shortestPath(
	start func(cell) bool,
	step func(cur, nb cell) bool,
	goal func(cell) bool,
) ([]pos, error) {
	startPos, ok := t.find(start)
	if !ok {
		return nil, ErrNoStartFound
	}

	cameFrom := make(map[pos]pos)
	frontier := []pos{startPos}
	var buf []pos

	for len(frontier) > 0 {
		var next []pos
		for _, cur := range frontier {
			curCell := t.at(cur)
			buf = t.neighbors(buf[:0], cur)
			for _, nb := range buf {
				if nb == startPos {
					continue
				}
				if _, visited := cameFrom[nb]; visited {
					continue
				}
				if !step(curCell, t.at(nb)) {
					continue
				}
				cameFrom[nb] = cur
				next = append(next, nb)
			}
		}

		for _, p := range next {
			if goal(t.at(p)) {
				return t.reconstruct(cameFrom, startPos, p), nil
			}
		}
		frontier = next
	}
	return nil, ErrNoPathFound
}

func (t *topology) reconstruct(cameFrom map[pos]pos, start, goal pos) []pos {
	path := []pos{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	// Reverse into start-to-goal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// parseTopology builds the immutable grid, rejecting empty input, invalid
// cells, and ragged rows.
func parseTopology(input string) (*topology, error) {
	var cells [][]cell
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		row := make([]cell, len(line))
		for i := 0; i < len(line); i++ {
			c := line[i]
			if c != 'S' && c != 'E' && (c < 'a' || c > 'z') {
				return nil, fmt.Errorf("bad cell %q in line %q", c, line)
			}
			row[i] = cell(c)
		}
		cells = append(cells, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("row length %d differs from %d", len(row), cols)
		}
	}
	return &topology{cells: cells, rows: len(cells), cols: cols}, nil
}
