package stats

import (
	"strings"
	"testing"

	"github.com/brimdata/fastin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	input := "a b c\n\nlonger line here\nend"
	s, err := Count(fastin.NewReaderSize(strings.NewReader(input), 4))
	require.NoError(t, err)
	assert.Equal(t, Stats{Lines: 4, Fields: 7, Bytes: int64(len(input)), MaxLine: 16}, s)
	assert.Equal(t, "lines 4\nfields 7\nbytes 27 (27 B)\nmax_line 16", s.String())
}

func TestCountEmpty(t *testing.T) {
	s, err := Count(fastin.NewReader(strings.NewReader("")))
	require.NoError(t, err)
	assert.Equal(t, Stats{}, s)
}
