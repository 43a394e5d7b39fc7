package inputflags

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/alecthomas/units"
	"github.com/brimdata/fastin"
	"github.com/brimdata/fastin/pkg/ctxio"
	"go.uber.org/multierr"
)

type Flags struct {
	fastin.ReaderOpts
	bufSize string
	maxLine string
}

func (f *Flags) Options() fastin.ReaderOpts {
	return f.ReaderOpts
}

func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.bufSize, "bufsize", units.Base2Bytes(fastin.DefaultBufferSize).String(),
		"initial size of the line buffer, as '8KiB' or '1MiB', etc.")
	fs.StringVar(&f.maxLine, "maxline", "0",
		"maximum line length, as '10MiB', etc. (0 for no limit)")
}

// Init is called after flags have been parsed.
func (f *Flags) Init() error {
	size, err := units.ParseStrictBytes(f.bufSize)
	if err != nil {
		return fmt.Errorf("-bufsize: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("-bufsize: must be positive: %s", f.bufSize)
	}
	f.BufferSize = int(size)
	limit, err := units.ParseStrictBytes(f.maxLine)
	if err != nil {
		return fmt.Errorf("-maxline: %w", err)
	}
	f.MaxLineSize = int(limit)
	return nil
}

// Open opens the named inputs, with "-" meaning standard input, and returns
// their concatenation.
func (f *Flags) Open(ctx context.Context, paths []string) (*Input, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	in := &Input{}
	var readers []io.Reader
	for _, path := range paths {
		if path == "-" {
			readers = append(readers, in.terminate(os.Stdin))
			in.Stdin = true
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			in.Close()
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if info, err := file.Stat(); err == nil {
			in.BytesTotal += info.Size()
		}
		readers = append(readers, in.terminate(file))
		in.closers = append(in.closers, file)
	}
	if in.Stdin {
		// Total size is unknown.
		in.BytesTotal = 0
	}
	in.reader = ctxio.NewReader(ctx, io.MultiReader(readers...))
	return in, nil
}

// NewReader returns a fastin.Reader over r configured by the flags.
func (f *Flags) NewReader(r io.Reader) *fastin.Reader {
	return fastin.NewReaderWithOpts(r, f.ReaderOpts)
}

// Input is the concatenation of the input files.  A newline is supplied
// after any input whose final line is unterminated so that lines from
// adjacent inputs are never joined.  Input counts the bytes read from the
// files so that progress may be displayed from another goroutine.
type Input struct {
	reader     io.Reader
	closers    []io.Closer
	bytesRead  int64
	BytesTotal int64
	Stdin      bool
}

func (i *Input) Read(b []byte) (int, error) {
	return i.reader.Read(b)
}

func (i *Input) terminate(r io.Reader) io.Reader {
	return &terminator{reader: r, count: &i.bytesRead, last: '\n'}
}

func (i *Input) BytesRead() int64 {
	return atomic.LoadInt64(&i.bytesRead)
}

func (i *Input) Close() error {
	var err error
	for _, c := range i.closers {
		err = multierr.Append(err, c.Close())
	}
	i.closers = nil
	return err
}

// terminator passes through its reader and appends a newline at EOF if the
// last byte read was not one.  Only bytes from the reader are counted.
type terminator struct {
	reader  io.Reader
	count   *int64
	last    byte
	eof     bool
	pending bool
}

func (t *terminator) Read(b []byte) (int, error) {
	if t.eof {
		if t.pending && len(b) > 0 {
			t.pending = false
			b[0] = '\n'
			return 1, nil
		}
		if t.pending {
			return 0, nil
		}
		return 0, io.EOF
	}
	n, err := t.reader.Read(b)
	if n > 0 {
		atomic.AddInt64(t.count, int64(n))
		t.last = b[n-1]
	}
	if err != io.EOF {
		return n, err
	}
	t.eof = true
	if t.last == '\n' {
		return n, io.EOF
	}
	if n < len(b) {
		b[n] = '\n'
		return n + 1, io.EOF
	}
	t.pending = true
	return n, nil
}
