package fastin_test

import (
	"strings"
	"testing"

	"github.com/brimdata/fastin"
	"github.com/stretchr/testify/assert"
)

func tokens(line string) []string {
	var out []string
	f := fastin.NewFields([]byte(line))
	for {
		tok, ok := f.Next()
		if !ok {
			return out
		}
		out = append(out, string(tok))
	}
}

func TestFields(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"a", []string{"a"}},
		{"  a  b\t\tc ", []string{"a", "b", "c"}},
		{"Lorem Ipsum Sit Dolor", []string{"Lorem", "Ipsum", "Sit", "Dolor"}},
		{"x\r", []string{"x\r"}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, tokens(c.line), "%q", c.line)
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	for _, line := range []string{"a", "1 2 3", "alice 30 x y z", "-1.5e3 foo"} {
		assert.Equal(t, line, strings.Join(tokens(line), " "))
	}
}

func TestNextFields(t *testing.T) {
	r := fastin.NewReader(strings.NewReader("Lorem Ipsum Sit Dolor\nnext"))
	f := r.NextFields()
	assert.Equal(t, "Lorem", string(f.Token()))
	assert.Equal(t, " Ipsum Sit Dolor", string(f.Rest()))
	assert.Equal(t, "next", string(r.NextLine()))
}
