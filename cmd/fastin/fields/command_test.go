package fields

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/cli/outputflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input, kinds, format string) string {
	k, err := ParseKinds(kinds)
	require.NoError(t, err)
	var buf bytes.Buffer
	w := outputflags.NewWriter(&buf, nil, format)
	require.NoError(t, Fields(fastin.NewReader(strings.NewReader(input)), k, w))
	require.NoError(t, w.Close())
	return buf.String()
}

func TestFieldsText(t *testing.T) {
	out := run(t, "alice 30 1.5\nbob 7\n", "str,u8,f64", "text")
	assert.Equal(t, "alice 30 1.5\nbob 7 0\n", out)
}

func TestFieldsJSON(t *testing.T) {
	out := run(t, "-3 x 0.5\n", "i16,str,f16", "json")
	assert.Equal(t, "[-3,\"x\",0.5]\n", out)
}

func TestFieldsYAML(t *testing.T) {
	out := run(t, "5 five\n", "int,string", "yaml")
	assert.Equal(t, "- 5\n- five\n", out)
}

func TestParseKindsLimits(t *testing.T) {
	_, err := ParseKinds("")
	assert.Error(t, err)
	_, err = ParseKinds("int,int,int,int,int,int")
	assert.Error(t, err)
	_, err = ParseKinds("int,nope")
	assert.Error(t, err)
	kinds, err := ParseKinds("i8,u64,f32,str,int")
	require.NoError(t, err)
	assert.Len(t, kinds, 5)
}

func TestParseKindsSuggests(t *testing.T) {
	_, err := ParseKinds("str,flaot32")
	assert.EqualError(t, err, `-k: unknown kind "flaot32" (did you mean "float32"?)`)
}

func TestKindTable(t *testing.T) {
	table := KindTable()
	assert.Len(t, table, len(fastin.Kinds()))
	assert.Equal(t, "int", table[0])
	assert.Contains(t, table, "u8   byte, uint8")
	assert.Contains(t, table, "str  string")
}
