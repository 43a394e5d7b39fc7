package inputflags

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brimdata/fastin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Flags {
	var f Flags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return &f
}

func TestDefaults(t *testing.T) {
	f := parse(t)
	require.NoError(t, f.Init())
	assert.Equal(t, fastin.DefaultBufferSize, f.BufferSize)
	assert.Equal(t, 0, f.MaxLineSize)
}

func TestSizes(t *testing.T) {
	f := parse(t, "-bufsize", "64KiB", "-maxline", "1MiB")
	require.NoError(t, f.Init())
	assert.Equal(t, 64*1024, f.Options().BufferSize)
	assert.Equal(t, 1024*1024, f.Options().MaxLineSize)
}

func TestBadSize(t *testing.T) {
	assert.Error(t, parse(t, "-bufsize", "lots").Init())
	assert.Error(t, parse(t, "-bufsize", "0B").Init())
}

func TestOpenConcatenates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("1 2\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("3 4\n"), 0644))
	f := parse(t)
	require.NoError(t, f.Init())
	in, err := f.Open(context.Background(), []string{a, b})
	require.NoError(t, err)
	defer in.Close()
	assert.EqualValues(t, 8, in.BytesTotal)
	r := f.NewReader(in)
	var sum int
	for r.HasNextLine() {
		x, y := fastin.Tuple2[int, int](r)
		sum += x + y
	}
	require.NoError(t, r.Err())
	assert.Equal(t, 10, sum)
	assert.EqualValues(t, 8, in.BytesRead())
}

func TestOpenConcatenatesUnterminated(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	c := filepath.Join(dir, "c")
	require.NoError(t, os.WriteFile(a, []byte("1 2"), 0644))
	require.NoError(t, os.WriteFile(b, nil, 0644))
	require.NoError(t, os.WriteFile(c, []byte("3 4\n5"), 0644))
	f := parse(t)
	require.NoError(t, f.Init())
	in, err := f.Open(context.Background(), []string{a, b, c})
	require.NoError(t, err)
	defer in.Close()
	r := f.NewReader(in)
	var lines []string
	for r.HasNextLine() {
		lines = append(lines, string(r.NextLine()))
	}
	require.NoError(t, r.Err())
	assert.Equal(t, []string{"1 2", "3 4", "5"}, lines)
	assert.EqualValues(t, 8, in.BytesRead())
}

func TestTerminator(t *testing.T) {
	for _, c := range []struct {
		in, out string
	}{
		{"", ""},
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\nbc", "a\nbc\n"},
	} {
		var n int64
		r := &terminator{reader: iotest.OneByteReader(strings.NewReader(c.in)), count: &n, last: '\n'}
		b, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, c.out, string(b), c.in)
		assert.EqualValues(t, len(c.in), n, c.in)
	}
}

func TestOpenMissing(t *testing.T) {
	f := parse(t)
	_, err := f.Open(context.Background(), []string{filepath.Join(t.TempDir(), "nope")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in, err := parse(t).Open(ctx, []string{path})
	require.NoError(t, err)
	defer in.Close()
	_, err = io.ReadAll(in)
	assert.ErrorIs(t, err, context.Canceled)
}
