// Package day11 runs the monkey keep-away simulation: each monkey drains
// its queue of worry levels, transforms them, and throws them on by a
// divisibility test.
package day11

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("11a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
	solve.Register("11b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
}

// Part1 runs 20 rounds with worry levels divided by 3 after each
// inspection and returns the product of the two largest inspection counts.
func Part1(input string) (int64, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return 0, err
	}
	return monkeyBusiness(runRounds(monkeys, 20, 3)), nil
}

// Part2 runs 10000 rounds with no worry relief; magnitudes stay bounded by
// reduction modulo the divisor product.
func Part2(input string) (int64, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return 0, err
	}
	return monkeyBusiness(runRounds(monkeys, 10000, 1)), nil
}

// An operand in a worry transform: the old value or a literal.
type operand struct {
	old bool
	num int64
}

func (o operand) value(old int64) int64 {
	if o.old {
		return old
	}
	return o.num
}

type operation struct {
	left, right operand
	mul         bool
}

func (op operation) apply(old int64) int64 {
	l, r := op.left.value(old), op.right.value(old)
	if op.mul {
		return l * r
	}
	return l + r
}

type monkey struct {
	index     int
	items     []int64
	op        operation
	divisor   int64
	ifTrue    int
	ifFalse   int
	inspected int64
}

// runRounds plays the given number of rounds. Each round visits monkeys in
// index order and drains the queue each held at its turn; an item thrown to
// a later monkey is therefore processed again within the same round, while
// one thrown backwards waits for the next round. Every dequeued item is
// reduced modulo the product of all divisors first, which never changes any
// routing decision since each divisor divides the product.
func runRounds(monkeys []*monkey, rounds int, worryDivider int64) []*monkey {
	divisorProduct := int64(1)
	for _, m := range monkeys {
		divisorProduct *= m.divisor
	}

	for round := 0; round < rounds; round++ {
		for _, m := range monkeys {
			items := m.items
			m.items = nil
			m.inspected += int64(len(items))
			for _, item := range items {
				item %= divisorProduct
				item = m.op.apply(item)
				item /= worryDivider
				target := m.ifFalse
				if item%m.divisor == 0 {
					target = m.ifTrue
				}
				monkeys[target].items = append(monkeys[target].items, item)
			}
		}
	}
	return monkeys
}

// monkeyBusiness is the product of the two largest inspection counts.
func monkeyBusiness(monkeys []*monkey) int64 {
	counts := make([]int64, len(monkeys))
	for i, m := range monkeys {
		counts[i] = m.inspected
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i] > counts[j] })
	if len(counts) < 2 {
		return 0
	}
	return counts[0] * counts[1]
}

// parseMonkeys reads blank-line-separated monkey blocks and orders them by
// their declared index. Routing targets must refer to parsed monkeys.
func parseMonkeys(input string) ([]*monkey, error) {
	var monkeys []*monkey
	var cur *monkey

	finish := func() error {
		if cur == nil {
			return nil
		}
		if cur.divisor == 0 {
			return fmt.Errorf("monkey %d has no divisibility test", cur.index)
		}
		monkeys = append(monkeys, cur)
		cur = nil
		return nil
	}

	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			if err := finish(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "Monkey "):
			if err := finish(); err != nil {
				return nil, err
			}
			indexStr := strings.TrimSuffix(line[len("Monkey "):], ":")
			index, err := strconv.Atoi(indexStr)
			if err != nil {
				return nil, fmt.Errorf("bad monkey header %q", line)
			}
			cur = &monkey{index: index}
		case cur == nil:
			return nil, fmt.Errorf("line %q outside a monkey block", line)
		case strings.HasPrefix(line, "Starting items:"):
			for _, itemStr := range strings.Split(line[len("Starting items:"):], ",") {
				item, err := strconv.ParseInt(strings.TrimSpace(itemStr), 10, 64)
				if err != nil {
					return nil, fmt.Errorf("bad item list %q", line)
				}
				cur.items = append(cur.items, item)
			}
		case strings.HasPrefix(line, "Operation:"):
			op, err := parseOperation(strings.TrimSpace(line[len("Operation:"):]))
			if err != nil {
				return nil, err
			}
			cur.op = op
		case strings.HasPrefix(line, "Test: divisible by "):
			divisor, err := strconv.ParseInt(line[len("Test: divisible by "):], 10, 64)
			if err != nil || divisor <= 0 {
				return nil, fmt.Errorf("bad test %q", line)
			}
			cur.divisor = divisor
		case strings.HasPrefix(line, "If true: throw to monkey "):
			target, err := strconv.Atoi(line[len("If true: throw to monkey "):])
			if err != nil {
				return nil, fmt.Errorf("bad throw target %q", line)
			}
			cur.ifTrue = target
		case strings.HasPrefix(line, "If false: throw to monkey "):
			target, err := strconv.Atoi(line[len("If false: throw to monkey "):])
			if err != nil {
				return nil, fmt.Errorf("bad throw target %q", line)
			}
			cur.ifFalse = target
		default:
			return nil, fmt.Errorf("bad monkey line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := finish(); err != nil {
		return nil, err
	}

	sort.Slice(monkeys, func(i, j int) bool { return monkeys[i].index < monkeys[j].index })
	for _, m := range monkeys {
		if m.ifTrue >= len(monkeys) || m.ifFalse >= len(monkeys) {
			return nil, fmt.Errorf("monkey %d throws to a monkey that does not exist", m.index)
		}
	}
	return monkeys, nil
}

func parseOperation(s string) (operation, error) {
	rest, ok := strings.CutPrefix(s, "new = ")
	if !ok {
		return operation{}, fmt.Errorf("bad operation %q", s)
	}
	fields := strings.Fields(rest)
	if len(fields) != 3 {
		return operation{}, fmt.Errorf("bad operation %q", s)
	}
	var op operation
	var err error
	if op.left, err = parseOperand(fields[0]); err != nil {
		return operation{}, fmt.Errorf("bad operation %q: %w", s, err)
	}
	switch fields[1] {
	case "+":
	case "*":
		op.mul = true
	default:
		return operation{}, fmt.Errorf("bad operation %q", s)
	}
	if op.right, err = parseOperand(fields[2]); err != nil {
		return operation{}, fmt.Errorf("bad operation %q: %w", s, err)
	}
	return op, nil
}

func parseOperand(s string) (operand, error) {
	if s == "old" {
		return operand{old: true}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return operand{}, fmt.Errorf("bad operand %q", s)
	}
	return operand{num: n}, nil
}
