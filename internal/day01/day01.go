// Package day01 totals the calories carried per elf: blank-line-separated
// groups of numbers, one number per line.
package day01

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("1a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
	solve.Register("1b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
}

// Part1 returns the largest group total, or 0 when the input holds no
// groups at all.
func Part1(input string) (int64, error) {
	totals, err := parseGroupTotals(input)
	if err != nil {
		return 0, err
	}
	var max int64
	for _, n := range totals {
		if n > max {
			max = n
		}
	}
	return max, nil
}

// Part2 returns the sum of the three largest group totals (fewer if the
// input has fewer than three groups).
func Part2(input string) (int64, error) {
	totals, err := parseGroupTotals(input)
	if err != nil {
		return 0, err
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i] > totals[j] })
	var sum int64
	for i, n := range totals {
		if i == 3 {
			break
		}
		sum += n
	}
	return sum, nil
}

func parseGroupTotals(input string) ([]int64, error) {
	var totals []int64
	inGroup := false
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			inGroup = false
			continue
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad calorie line %q: %w", line, err)
		}
		if !inGroup {
			totals = append(totals, 0)
			inGroup = true
		}
		totals[len(totals)-1] += n
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}
