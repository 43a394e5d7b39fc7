package skim_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brimdata/fastin/pkg/skim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ReadSize    = 64 * 1024
	MaxLineSize = 50 * 1024 * 1024
)

func makeLinesOfSize(size int) [][]byte {
	var lines [][]byte
	var count int
	for {
		l := fmt.Sprintf("%d\tLorem ipsum dolor sit amet, consectetur adipiscing elit. Quisque tincidunt turpis nunc, viverra viverra orci porta nec. Fusce imperdiet felis non bibendum aliquam. In hac habitasse platea dictumst. Aenean id fermentum mi, at sagittis lectus.\t%d", len(lines), count)
		count += len(l)
		lines = append(lines, []byte(l))
		if count > size {
			break
		}
	}
	return lines
}

func TestSkim(t *testing.T) {
	expected := makeLinesOfSize(4 * ReadSize)
	data := bytes.Join(expected, []byte("\n"))
	buf := make([]byte, ReadSize)
	scanner := skim.NewScanner(bytes.NewReader(data), buf, MaxLineSize)
	var i int
	for {
		line, err := scanner.ScanLine()
		require.NoError(t, err)
		if line == nil {
			break
		}
		require.Equal(t, string(expected[i]), string(bytes.TrimSuffix(line, []byte("\n"))))
		i++
	}
	require.Equal(t, len(expected), i)
	assert.EqualValues(t, len(data), scanner.BytesRead)
	assert.EqualValues(t, len(expected), scanner.Lines)
}

func TestSkimOneByteReads(t *testing.T) {
	data := "a b c\n\nlonger line than the buffer\nend"
	scanner := skim.NewScanner(iotest.OneByteReader(strings.NewReader(data)), make([]byte, 4), 0)
	var lines []string
	for {
		line, err := scanner.ScanLine()
		require.NoError(t, err)
		if line == nil {
			break
		}
		lines = append(lines, string(line))
	}
	assert.Equal(t, []string{"a b c\n", "\n", "longer line than the buffer\n", "end"}, lines)
}

func TestSkimNoNewLine(t *testing.T) {
	data := []byte("line1\nline2")
	buf := make([]byte, ReadSize)
	scanner := skim.NewScanner(bytes.NewReader(data), buf, MaxLineSize)
	line, err := scanner.ScanLine()
	require.NoError(t, err)
	require.Equal(t, "line1\n", string(line))

	line, err = scanner.ScanLine()
	require.NoError(t, err)
	require.Equal(t, "line2", string(line))
	line, err = scanner.ScanLine()
	require.NoError(t, err)
	require.Equal(t, []byte(nil), line)
}

func TestSkimEmpty(t *testing.T) {
	scanner := skim.NewScanner(strings.NewReader(""), nil, 0)
	line, err := scanner.ScanLine()
	require.NoError(t, err)
	assert.Nil(t, line)
	assert.True(t, scanner.EOF())
}

func TestSkimLineTooLong(t *testing.T) {
	data := strings.Repeat("x", 100) + "\n"
	scanner := skim.NewScanner(strings.NewReader(data), make([]byte, 16), 64)
	_, err := scanner.ScanLine()
	assert.ErrorIs(t, err, skim.ErrLineTooLong)
	_, err = scanner.ScanLine()
	assert.ErrorIs(t, err, skim.ErrLineTooLong)
}

func TestSkimLimitFinalLine(t *testing.T) {
	scanner := skim.NewScanner(strings.NewReader("ab\nwxyz"), make([]byte, 4), 4)
	line, err := scanner.ScanLine()
	require.NoError(t, err)
	assert.Equal(t, "ab\n", string(line))
	line, err = scanner.ScanLine()
	require.NoError(t, err)
	assert.Equal(t, "wxyz", string(line))
	line, err = scanner.ScanLine()
	require.NoError(t, err)
	assert.Nil(t, line)

	for _, data := range []string{"wxyz\n", "wxyz5"} {
		scanner := skim.NewScanner(strings.NewReader(data), make([]byte, 4), 4)
		_, err := scanner.ScanLine()
		assert.ErrorIs(t, err, skim.ErrLineTooLong, data)
	}
}

func TestSkimReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("ok\npartial"), iotest.ErrReader(boom))
	scanner := skim.NewScanner(r, make([]byte, 64), 0)
	line, err := scanner.ScanLine()
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(line))
	_, err = scanner.ScanLine()
	assert.ErrorIs(t, err, boom)
}

func TestSkimGeneration(t *testing.T) {
	scanner := skim.NewScanner(strings.NewReader("a\nb\n"), nil, 0)
	gen := scanner.Generation()
	_, err := scanner.ScanLine()
	require.NoError(t, err)
	assert.NotEqual(t, gen, scanner.Generation())
}
