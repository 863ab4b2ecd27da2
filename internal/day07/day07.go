// Package day07 rebuilds a directory tree from a shell transcript and sizes
// its directories.
//
// The tree is an arena of nodes addressed by index: each node records its
// parent's index (-1 for the root) and its children by name, so the
// parent/child cycle never involves direct node handles.
package day07

import (
	"bufio"
	"errors"
	"fmt"
	"iter"
	"sort"
	"strconv"
	"strings"

	"advent/internal/solve"
)

func init() {
	solve.Register("7a", func(input string) (string, error) {
		n, err := Part1(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
	solve.Register("7b", func(input string) (string, error) {
		n, err := Part2(input)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil
	})
}

var ErrNoDirectory = errors.New("no directory found")

const (
	totalSpace  = 70000000
	neededSpace = 30000000
)

// Part1 sums the total sizes of all directories of total size at most
// 100000.
func Part1(input string) (int64, error) {
	t, err := parseTranscript(input)
	if err != nil {
		return 0, err
	}
	var sum int64
	for dir := range t.directories() {
		if size := t.totalSize(dir); size <= 100000 {
			sum += size
		}
	}
	return sum, nil
}

// Part2 returns the total size of the smallest directory whose deletion
// frees enough space for the update.
func Part2(input string) (int64, error) {
	t, err := parseTranscript(input)
	if err != nil {
		return 0, err
	}
	used := t.totalSize(rootIndex)
	if used > totalSpace {
		return 0, fmt.Errorf("used space %d exceeds disk size %d", used, totalSpace)
	}
	need := neededSpace - (totalSpace - used)

	best := int64(-1)
	for dir := range t.directories() {
		size := t.totalSize(dir)
		if size >= need && (best == -1 || size < best) {
			best = size
		}
	}
	if best == -1 {
		return 0, ErrNoDirectory
	}
	return best, nil
}

const rootIndex = 0

type node struct {
	name     string
	size     int64 // 0 for a directory
	parent   int   // -1 for the root
	children map[string]int
}

func (n *node) isDir() bool { return n.size == 0 }

// tree is the node arena plus the cursor used while replaying the
// transcript.
type tree struct {
	nodes []node
	cur   int
}

func newTree() *tree {
	return &tree{
		nodes: []node{{name: "/", parent: -1}},
	}
}

// child returns the index of the named child of parent, creating it if
// absent. Re-inserting an existing name is a no-op: the first entry wins,
// so re-listing a directory never duplicates or resizes children.
func (t *tree) child(parent int, name string, size int64) int {
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[string]int)
	}
	if i, ok := p.children[name]; ok {
		return i
	}
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{name: name, size: size, parent: parent})
	t.nodes[parent].children[name] = i
	return i
}

// changeDir moves the cursor: "/" resets to the root, ".." moves to the
// parent (staying put at the root), and any other name descends into that
// child directory, creating it if needed.
func (t *tree) changeDir(name string) {
	switch name {
	case "/":
		t.cur = rootIndex
	case "..":
		if parent := t.nodes[t.cur].parent; parent != -1 {
			t.cur = parent
		}
	default:
		t.cur = t.child(t.cur, name, 0)
	}
}

// totalSize is the node's own size plus the recursive total of its
// children, computed fresh on each call.
func (t *tree) totalSize(i int) int64 {
	size := t.nodes[i].size
	for _, child := range t.nodes[i].children {
		size += t.totalSize(child)
	}
	return size
}

// directories yields the index of every directory reachable from the root,
// root included, in pre-order.
func (t *tree) directories() iter.Seq[int] {
	return func(yield func(int) bool) {
		t.walkDirs(rootIndex, yield)
	}
}

func (t *tree) walkDirs(i int, yield func(int) bool) bool {
	if !yield(i) {
		return false
	}
	// Visit children in name order so repeated walks agree.
	names := make([]string, 0, len(t.nodes[i].children))
	for name := range t.nodes[i].children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child := t.nodes[i].children[name]
		if t.nodes[child].isDir() && !t.walkDirs(child, yield) {
			return false
		}
	}
	return true
}

// parseTranscript classifies each line by its leading characters ("$ cd",
// "$ ls", "dir", or a file size) and replays it against the tree.
func parseTranscript(input string) (*tree, error) {
	t := newTree()
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
		case line == "$ ls":
		case strings.HasPrefix(line, "$ cd "):
			name := line[len("$ cd "):]
			if name == "" {
				return nil, fmt.Errorf("bad command %q", line)
			}
			t.changeDir(name)
		case strings.HasPrefix(line, "dir "):
			name := line[len("dir "):]
			if name == "" {
				return nil, fmt.Errorf("bad entry %q", line)
			}
			t.child(t.cur, name, 0)
		default:
			sizeStr, name, ok := strings.Cut(line, " ")
			if !ok || name == "" {
				return nil, fmt.Errorf("bad entry %q", line)
			}
			size, err := strconv.ParseInt(sizeStr, 10, 64)
			if err != nil || size <= 0 {
				return nil, fmt.Errorf("bad file size in %q", line)
			}
			t.child(t.cur, name, size)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
