// Package day04 counts overlapping section-assignment ranges.
package day04

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("4a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("4b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

// A span is an inclusive range of section IDs.
type span struct {
	start, end int
}

func (s span) contains(n int) bool { return s.start <= n && n <= s.end }

func (s span) containsAll(other span) bool {
	return s.contains(other.start) && s.contains(other.end)
}

func (s span) overlaps(other span) bool {
	return s.contains(other.start) || s.contains(other.end) ||
		other.contains(s.start) || other.contains(s.end)
}

type pair struct {
	left, right span
}

// Part1 counts pairs where one range fully contains the other.
func Part1(input string) (int, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return 0, err
	}
	var count int
	for _, p := range pairs {
		if p.left.containsAll(p.right) || p.right.containsAll(p.left) {
			count++
		}
	}
	return count, nil
}

// Part2 counts pairs that overlap at all.
func Part2(input string) (int, error) {
	pairs, err := parsePairs(input)
	if err != nil {
		return 0, err
	}
	var count int
	for _, p := range pairs {
		if p.left.overlaps(p.right) {
			count++
		}
	}
	return count, nil
}

func parsePairs(input string) ([]pair, error) {
	var pairs []pair
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("bad pair %q", line)
		}
		var p pair
		var err error
		if p.left, err = parseSpan(left); err != nil {
			return nil, fmt.Errorf("bad pair %q: %w", line, err)
		}
		if p.right, err = parseSpan(right); err != nil {
			return nil, fmt.Errorf("bad pair %q: %w", line, err)
		}
		pairs = append(pairs, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func parseSpan(s string) (span, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return span{}, fmt.Errorf("bad range %q", s)
	}
	var sp span
	var err error
	if sp.start, err = strconv.Atoi(start); err != nil {
		return span{}, fmt.Errorf("bad range %q: %w", s, err)
	}
	if sp.end, err = strconv.Atoi(end); err != nil {
		return span{}, fmt.Errorf("bad range %q: %w", s, err)
	}
	return sp, nil
}
