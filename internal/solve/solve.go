// Package solve holds the registry of puzzle solutions. Each day's package
// registers its parts at init time under names like "7a" and "7b"; the CLI
// looks solutions up by name and runs them over the raw input text.
package solve

import (
	"fmt"
	"sort"
	"strconv"
)

// A Func computes one challenge answer from the full input text.
type Func func(input string) (string, error)

var solutions = make(map[string]Func)

// Register adds a named solution. It panics on a duplicate name since that
// indicates two days claiming the same slot.
func Register(name string, fn Func) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// Lookup returns the solution registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := solutions[name]
	return fn, ok
}

// Names returns all registered solution names in day order: numeric prefix
// first, then the part suffix.
func Names() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 != n1 {
		return n0 < n1
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("solution name %q has no numeric prefix", name))
	}
	return n, name[i:]
}
