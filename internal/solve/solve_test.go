package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameLess(t *testing.T) {
	for _, tt := range []struct {
		name0, name1 string
		want         bool
	}{
		{"1a", "2a", true},
		{"2a", "10a", true},
		{"9b", "10a", true},
		{"7a", "7b", true},
		{"7b", "7a", false},
		{"7a", "7a", false},
	} {
		got := nameLess(tt.name0, tt.name1)
		assert.Equal(t, tt.want, got, "nameLess(%q, %q)", tt.name0, tt.name1)
	}
}

func TestSplitName(t *testing.T) {
	n, s := splitName("12b")
	assert.Equal(t, 12, n)
	assert.Equal(t, "b", s)
}

func TestRegister(t *testing.T) {
	echo := func(input string) (string, error) { return input, nil }

	Register("99zz", echo)
	fn, ok := Lookup("99zz")
	assert.True(t, ok)
	got, err := fn("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", got)

	assert.Panics(t, func() { Register("99zz", echo) })

	_, ok = Lookup("99absent")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		assert.True(t, nameLess(names[i-1], names[i]),
			"%q should sort before %q", names[i-1], names[i])
	}
}
