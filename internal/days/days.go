// Package days links every day's solutions into the registry. Importing it
// pulls in each day package for its registration side effects.
package days

import (
	_ "advent/internal/day01"
	_ "advent/internal/day02"
	_ "advent/internal/day03"
	_ "advent/internal/day04"
	_ "advent/internal/day05"
	_ "advent/internal/day06"
	_ "advent/internal/day07"
	_ "advent/internal/day08"
	_ "advent/internal/day09"
	_ "advent/internal/day10"
	_ "advent/internal/day11"
	_ "advent/internal/day12"
)
