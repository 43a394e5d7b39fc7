package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	candidates := []string{"head", "pairs", "stats", "sum", "fields"}
	for _, c := range []struct {
		name     string
		expected string
		ok       bool
	}{
		{"haed", "head", true},
		{"feilds", "fields", true},
		{"stat", "stats", true},
		{"sum", "sum", true},
		{"zzzzzz", "", false},
		{"", "", false},
	} {
		s, ok := Closest(c.name, candidates)
		assert.Equal(t, c.ok, ok, c.name)
		assert.Equal(t, c.expected, s, c.name)
	}
	_, ok := Closest("x", nil)
	assert.False(t, ok)
}

func TestClosestTie(t *testing.T) {
	s, ok := Closest("ab", []string{"aa", "bb"})
	assert.True(t, ok)
	assert.Equal(t, "aa", s)
}

func TestHint(t *testing.T) {
	assert.Equal(t, ` (did you mean "float64"?)`, Hint("flaot64", []string{"f64", "float32", "float64"}))
	assert.Equal(t, "", Hint("nothing", []string{"f64"}))
}
