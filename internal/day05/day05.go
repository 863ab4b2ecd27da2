// Package day05 rearranges stacks of crates following crane instructions
// and reports the crate on top of each stack.
package day05

import (
	"bufio"
	"fmt"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("5a", Part1)
	solve.Register("5b", Part2)
}

// stacks holds one slice per stack, bottom crate first.
type stacks [][]byte

// tops returns the top crate of each non-empty stack, left to right.
func (st stacks) tops() string {
	var b strings.Builder
	for _, stack := range st {
		if len(stack) > 0 {
			b.WriteByte(stack[len(stack)-1])
		}
	}
	return b.String()
}

type move struct {
	count, from, to int
}

// checkMove validates the 1-based stack references and the crate count.
func (st stacks) checkMove(m move) error {
	if m.from < 1 || m.from > len(st) {
		return fmt.Errorf("move references stack %d of %d", m.from, len(st))
	}
	if m.to < 1 || m.to > len(st) {
		return fmt.Errorf("move references stack %d of %d", m.to, len(st))
	}
	if len(st[m.from-1]) < m.count {
		return fmt.Errorf("cannot move %d crates from stack %d holding %d",
			m.count, m.from, len(st[m.from-1]))
	}
	return nil
}

// apply moves crates one at a time, reversing their order.
func (st stacks) apply(m move) error {
	if err := st.checkMove(m); err != nil {
		return err
	}
	from, to := m.from-1, m.to-1
	for i := 0; i < m.count; i++ {
		n := len(st[from])
		st[to] = append(st[to], st[from][n-1])
		st[from] = st[from][:n-1]
	}
	return nil
}

// applyBlock moves crates as one block, preserving their order.
func (st stacks) applyBlock(m move) error {
	if err := st.checkMove(m); err != nil {
		return err
	}
	from, to := m.from-1, m.to-1
	n := len(st[from])
	st[to] = append(st[to], st[from][n-m.count:]...)
	st[from] = st[from][:n-m.count]
	return nil
}

// Part1 runs the moves with single-crate semantics.
func Part1(input string) (string, error) {
	return run(input, stacks.apply)
}

// Part2 runs the moves with block semantics.
func Part2(input string) (string, error) {
	return run(input, stacks.applyBlock)
}

func run(input string, apply func(stacks, move) error) (string, error) {
	st, moves, err := parse(input)
	if err != nil {
		return "", err
	}
	for _, m := range moves {
		if err := apply(st, m); err != nil {
			return "", err
		}
	}
	return st.tops(), nil
}

type parseMode int

const (
	modeStacks parseMode = iota
	modeSeparator
	modeMoves
)

// parse reads the pictorial stack block, the label line, a blank separator,
// then the move list. Lines are classified by their leading characters.
func parse(input string) (stacks, []move, error) {
	var crateLines [][]byte
	var moves []move
	mode := modeStacks

	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		switch mode {
		case modeStacks:
			if strings.HasPrefix(line, "[") || strings.HasPrefix(line, "    ") {
				crates, err := parseCrateLine(line)
				if err != nil {
					return nil, nil, err
				}
				crateLines = append(crateLines, crates)
			} else {
				// The stack-number label line; the blank line after
				// it separates the block from the moves.
				mode = modeSeparator
			}
		case modeSeparator:
			mode = modeMoves
			if line == "" {
				continue
			}
			fallthrough
		case modeMoves:
			if line == "" {
				continue
			}
			m, err := parseMove(line)
			if err != nil {
				return nil, nil, err
			}
			moves = append(moves, m)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	st, err := buildStacks(crateLines)
	if err != nil {
		return nil, nil, err
	}
	return st, moves, nil
}

// parseCrateLine splits a stack picture line into 4-byte cells; each cell is
// either blank or "[X]". The returned slice holds one byte per stack, 0 for
// an empty cell.
func parseCrateLine(line string) ([]byte, error) {
	var crates []byte
	for i := 0; i < len(line); i += 4 {
		cell := line[i:min(i+4, len(line))]
		switch {
		case strings.TrimRight(cell, " ") == "":
			crates = append(crates, 0)
		case len(cell) >= 3 && cell[0] == '[' && cell[2] == ']':
			crates = append(crates, cell[1])
		default:
			return nil, fmt.Errorf("bad crate cell %q", cell)
		}
	}
	return crates, nil
}

// buildStacks turns top-down picture lines into bottom-first stacks. Every
// picture line must cover the same number of stacks.
func buildStacks(crateLines [][]byte) (stacks, error) {
	if len(crateLines) == 0 {
		return nil, nil
	}
	width := len(crateLines[0])
	for _, crates := range crateLines {
		if len(crates) != width {
			return nil, fmt.Errorf("stack line covers %d stacks; want %d", len(crates), width)
		}
	}
	st := make(stacks, width)
	for i := len(crateLines) - 1; i >= 0; i-- {
		for j, c := range crateLines[i] {
			if c != 0 {
				st[j] = append(st[j], c)
			}
		}
	}
	return st, nil
}

func parseMove(line string) (move, error) {
	var m move
	if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.count, &m.from, &m.to); err != nil {
		return move{}, fmt.Errorf("bad move %q: %w", line, err)
	}
	return m, nil
}
