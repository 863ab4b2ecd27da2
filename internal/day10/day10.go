// Package day10 runs the cycle-counted video machine: noop takes one cycle,
// addx takes two, and the CRT draws one pixel per cycle.
package day10

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("10a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
	solve.Register("10b", Part2)
}

const (
	crtWidth  = 40
	crtHeight = 6
)

// Part1 sums the signal strength (cycle times X) at cycle 20 and every 40
// cycles after.
func Part1(input string) (int64, error) {
	commands, err := parseCommands(input)
	if err != nil {
		return 0, err
	}
	strength, _ := runMachine(commands)
	return strength, nil
}

// Part2 returns the rendered 40x6 CRT display.
func Part2(input string) (string, error) {
	commands, err := parseCommands(input)
	if err != nil {
		return "", err
	}
	_, screen := runMachine(commands)
	return screen, nil
}

type command struct {
	addx  bool
	delta int64
}

func (c command) cycles() int {
	if c.addx {
		return 2
	}
	return 1
}

func parseCommands(input string) ([]command, error) {
	var commands []command
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
		case line == "noop":
			commands = append(commands, command{})
		case strings.HasPrefix(line, "addx "):
			delta, err := strconv.ParseInt(line[len("addx "):], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad command %q: %w", line, err)
			}
			commands = append(commands, command{addx: true, delta: delta})
		default:
			return nil, fmt.Errorf("bad command %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commands, nil
}

// machineState marks whether the machine is waiting for its next command or
// partway through a multi-cycle one.
type machineState int

const (
	awaitingCommand machineState = iota
	executing
)

// runMachine ticks the machine one cycle at a time: draw the current pixel,
// sample the signal strength, then retire or continue the current command.
func runMachine(commands []command) (int64, string) {
	var crt [crtHeight][crtWidth]bool
	x := int64(1)
	var strength int64

	state := awaitingCommand
	var current command
	var remaining int

	for cycle := 1; ; cycle++ {
		col := (cycle - 1) % crtWidth
		row := (cycle - 1) / crtWidth
		if row < crtHeight && int64(col) >= x-1 && int64(col) <= x+1 {
			crt[row][col] = true
		}

		if cycle == 20 || (cycle > 20 && (cycle-20)%crtWidth == 0) {
			strength += int64(cycle) * x
		}

		switch state {
		case awaitingCommand:
			if len(commands) == 0 {
				return strength, renderCRT(&crt)
			}
			current, commands = commands[0], commands[1:]
			if n := current.cycles(); n > 1 {
				state = executing
				remaining = n - 1
			}
		case executing:
			remaining--
			if remaining == 0 {
				if current.addx {
					x += current.delta
				}
				state = awaitingCommand
			}
		}
	}
}

func renderCRT(crt *[crtHeight][crtWidth]bool) string {
	var b strings.Builder
	for row := range crt {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, lit := range crt[row] {
			if lit {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
