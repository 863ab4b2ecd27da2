// Package day03 finds items common to rucksack compartments and elf groups
// and sums their priorities.
package day03

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("3a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
	solve.Register("3b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	})
}

var (
	ErrNoCommonItem        = errors.New("no common item")
	ErrAmbiguousCommonItem = errors.New("more than one common item")
)

// priority maps a-z to 1-26 and A-Z to 27-52.
func priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("bad item %q", item)
}

// commonItem returns the single byte present in every set.
func commonItem(sets ...string) (byte, error) {
	counts := make(map[byte]int)
	for _, set := range sets {
		seen := make(map[byte]bool)
		for i := 0; i < len(set); i++ {
			c := set[i]
			if !seen[c] {
				seen[c] = true
				counts[c]++
			}
		}
	}
	var common []byte
	for c, n := range counts {
		if n == len(sets) {
			common = append(common, c)
		}
	}
	switch len(common) {
	case 0:
		return 0, ErrNoCommonItem
	case 1:
		return common[0], nil
	}
	return 0, ErrAmbiguousCommonItem
}

// Part1 sums the priority of the item common to each rucksack's two
// equal-size compartments.
func Part1(input string) (int, error) {
	sacks, err := parseSacks(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, sack := range sacks {
		half := len(sack) / 2
		item, err := commonItem(sack[:half], sack[half:])
		if err != nil {
			return 0, fmt.Errorf("bad rucksack %q: %w", sack, err)
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// Part2 groups rucksacks in threes and sums the priority of each group's
// single shared item.
func Part2(input string) (int, error) {
	sacks, err := parseSacks(input)
	if err != nil {
		return 0, err
	}
	if len(sacks)%3 != 0 {
		return 0, fmt.Errorf("rucksack count %d is not a multiple of 3", len(sacks))
	}
	var sum int
	for i := 0; i < len(sacks); i += 3 {
		group := sacks[i : i+3]
		item, err := commonItem(group[0], group[1], group[2])
		if err != nil {
			return 0, fmt.Errorf("bad group %q: %w", group, err)
		}
		p, err := priority(item)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

func parseSacks(input string) ([]string, error) {
	var sacks []string
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("rucksack %q has an odd number of items", line)
		}
		for i := 0; i < len(line); i++ {
			if _, err := priority(line[i]); err != nil {
				return nil, fmt.Errorf("bad rucksack %q: %w", line, err)
			}
		}
		sacks = append(sacks, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sacks, nil
}
