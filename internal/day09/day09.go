// Package day09 simulates a rope of knots on an unbounded grid and counts
// the cells the tail visits.
package day09

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("9a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("9b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

// Part1 simulates a 2-knot rope.
func Part1(input string) (int, error) {
	return run(input, 2)
}

// Part2 simulates a 10-knot rope.
func Part2(input string) (int, error) {
	return run(input, 10)
}

func run(input string, knots int) (int, error) {
	moves, err := parseMoves(input)
	if err != nil {
		return 0, err
	}
	r := newRope(knots)
	visited := map[pos]struct{}{r.tail(): {}}
	for _, m := range moves {
		for i := 0; i < m.steps; i++ {
			r.moveHead(m.dir)
			visited[r.tail()] = struct{}{}
		}
	}
	return len(visited), nil
}

type pos struct {
	x, y int
}

func (p pos) add(q pos) pos { return pos{p.x + q.x, p.y + q.y} }
func (p pos) sub(q pos) pos { return pos{p.x - q.x, p.y - q.y} }

type move struct {
	dir   pos
	steps int
}

func parseMoves(input string) ([]move, error) {
	var moves []move
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		dirStr, stepsStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("bad move %q", line)
		}
		var m move
		switch dirStr {
		case "U":
			m.dir = pos{0, 1}
		case "D":
			m.dir = pos{0, -1}
		case "L":
			m.dir = pos{-1, 0}
		case "R":
			m.dir = pos{1, 0}
		default:
			return nil, fmt.Errorf("bad direction in %q", line)
		}
		var err error
		m.steps, err = strconv.Atoi(stepsStr)
		if err != nil || m.steps < 0 {
			return nil, fmt.Errorf("bad step count in %q", line)
		}
		moves = append(moves, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return moves, nil
}

type rope struct {
	knots []pos
}

func newRope(knots int) *rope {
	return &rope{knots: make([]pos, knots)}
}

func (r *rope) tail() pos { return r.knots[len(r.knots)-1] }

// moveHead advances the head one cell and lets each following knot catch up
// in turn.
func (r *rope) moveHead(dir pos) {
	r.knots[0] = r.knots[0].add(dir)
	for i := 1; i < len(r.knots); i++ {
		diff := r.knots[i-1].sub(r.knots[i])
		r.knots[i] = r.knots[i].add(follow(diff))
	}
}

// follow maps the offset from a knot to its predecessor onto the step that
// keeps them adjacent. Ropes moving one cell at a time can only produce
// these offsets; anything else is a modeling bug.
func follow(diff pos) pos {
	switch d := [2]int{diff.x, diff.y}; d {
	case [2]int{0, 0},
		[2]int{0, -1}, [2]int{0, 1}, [2]int{-1, 0}, [2]int{1, 0},
		[2]int{-1, 1}, [2]int{-1, -1}, [2]int{1, -1}, [2]int{1, 1}:
		return pos{0, 0}
	case [2]int{0, 2}:
		return pos{0, 1}
	case [2]int{0, -2}:
		return pos{0, -1}
	case [2]int{2, 0}:
		return pos{1, 0}
	case [2]int{-2, 0}:
		return pos{-1, 0}
	case [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2}:
		return pos{1, 1}
	case [2]int{2, -1}, [2]int{1, -2}, [2]int{2, -2}:
		return pos{1, -1}
	case [2]int{-2, 1}, [2]int{-1, 2}, [2]int{-2, 2}:
		return pos{-1, 1}
	case [2]int{-2, -1}, [2]int{-1, -2}, [2]int{-2, -2}:
		return pos{-1, -1}
	default:
		panic(fmt.Sprintf("unhandled knot offset %v", d))
	}
}
