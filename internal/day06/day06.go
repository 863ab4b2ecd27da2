// Package day06 locates start-of-packet and start-of-message markers: the
// first window of distinct characters in a datastream.
package day06

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("6a", func(input string) (string, error) {
		return formatIndexes(Part1(input))
	})
	solve.Register("6b", func(input string) (string, error) {
		return formatIndexes(Part2(input))
	})
}

func formatIndexes(indexes []int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	parts := make([]string, len(indexes))
	for i, n := range indexes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ","), nil
}

// Part1 returns, per input line, the index just past the first window of 4
// distinct characters.
func Part1(input string) ([]int, error) {
	return markers(input, 4)
}

// Part2 is Part1 with 14-character windows.
func Part2(input string) ([]int, error) {
	return markers(input, 14)
}

func markers(input string, size int) ([]int, error) {
	var indexes []int
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		i, ok := findMarker(line, size)
		if !ok {
			return nil, fmt.Errorf("no %d-character marker in %q", size, line)
		}
		indexes = append(indexes, i)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return indexes, nil
}

// findMarker returns the index just past the first window of size distinct
// bytes in s.
func findMarker(s string, size int) (int, bool) {
windowLoop:
	for i := 0; i+size <= len(s); i++ {
		seen := make(map[byte]struct{}, size)
		for j := i; j < i+size; j++ {
			if _, ok := seen[s[j]]; ok {
				continue windowLoop
			}
			seen[s[j]] = struct{}{}
		}
		return i + size, true
	}
	return 0, false
}
