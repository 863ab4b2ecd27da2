// Package day02 scores the rock-paper-scissors strategy guide.
package day02

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("2a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("2b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

type shape int

const (
	rock shape = iota
	paper
	scissors
)

// score is 1 for rock, 2 for paper, 3 for scissors.
func (s shape) score() int { return int(s) + 1 }

// beats returns the shape s defeats.
func (s shape) beats() shape { return (s + 2) % 3 }

type outcome int

const (
	lost outcome = iota
	draw
	won
)

// score is 0 for a loss, 3 for a draw, 6 for a win.
func (o outcome) score() int { return int(o) * 3 }

func (s shape) against(other shape) outcome {
	switch {
	case s == other:
		return draw
	case s.beats() == other:
		return won
	default:
		return lost
	}
}

// deduce returns the shape to play against other to reach outcome o.
func (o outcome) deduce(other shape) shape {
	switch o {
	case draw:
		return other
	case lost:
		return other.beats()
	default:
		return (other + 1) % 3
	}
}

func parseShape(s string) (shape, error) {
	switch s {
	case "A", "X":
		return rock, nil
	case "B", "Y":
		return paper, nil
	case "C", "Z":
		return scissors, nil
	}
	return 0, fmt.Errorf("bad shape %q", s)
}

func parseOutcome(s string) (outcome, error) {
	switch s {
	case "X":
		return lost, nil
	case "Y":
		return draw, nil
	case "Z":
		return won, nil
	}
	return 0, fmt.Errorf("bad outcome %q", s)
}

// Part1 reads each round as elf shape, my shape and sums shape plus
// outcome scores.
func Part1(input string) (int, error) {
	var total int
	err := eachRound(input, func(elf, me string) error {
		elfShape, err := parseShape(elf)
		if err != nil {
			return err
		}
		myShape, err := parseShape(me)
		if err != nil {
			return err
		}
		total += myShape.score() + myShape.against(elfShape).score()
		return nil
	})
	return total, err
}

// Part2 reads each round as elf shape, desired outcome and deduces the
// shape to play.
func Part2(input string) (int, error) {
	var total int
	err := eachRound(input, func(elf, me string) error {
		elfShape, err := parseShape(elf)
		if err != nil {
			return err
		}
		want, err := parseOutcome(me)
		if err != nil {
			return err
		}
		total += want.deduce(elfShape).score() + want.score()
		return nil
	})
	return total, err
}

func eachRound(input string, fn func(elf, me string) error) error {
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("bad round %q", line)
		}
		if err := fn(fields[0], fields[1]); err != nil {
			return fmt.Errorf("bad round %q: %w", line, err)
		}
	}
	return scanner.Err()
}
