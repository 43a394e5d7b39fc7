// Package fastin reads line-oriented input of a known shape and parses the
// whitespace-separated tokens of each line into typed values with as little
// copying and checking as possible.
//
// Lines and Str values returned by a Reader alias the Reader's internal
// buffer.  They remain valid only until the next call that advances the
// Reader (NextLine, HasNextLine, or any of the parsing functions).  Copy
// anything that must outlive that call, e.g., with Str.String or
// Str.Clone.
//
// The parsing functions do not validate their input.  A token that is not
// a well-formed number of the requested kind yields an unspecified value,
// and fields requested beyond the end of a line yield zero values.  Only
// errors from the underlying io.Reader are reported, through Reader.Err.
package fastin

import (
	"io"

	"github.com/brimdata/fastin/pkg/skim"
)

const DefaultBufferSize = 8192

type ReaderOpts struct {
	// BufferSize is the initial capacity of the line buffer.
	BufferSize int
	// MaxLineSize, if positive, bounds the size to which the buffer may
	// grow.  The bound includes a line's newline, except for a final
	// unterminated line.  A longer line fails the Reader with
	// skim.ErrLineTooLong.
	MaxLineSize int
}

// Reader is not safe for concurrent use.
type Reader struct {
	scanner *skim.Scanner
	err     error
}

func NewReader(r io.Reader) *Reader {
	return NewReaderWithOpts(r, ReaderOpts{})
}

func NewReaderSize(r io.Reader, size int) *Reader {
	return NewReaderWithOpts(r, ReaderOpts{BufferSize: size})
}

func NewReaderWithOpts(r io.Reader, opts ReaderOpts) *Reader {
	size := opts.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{
		scanner: skim.NewScanner(r, make([]byte, size), opts.MaxLineSize),
	}
}

// HasNextLine reports whether another line is available.  It reads from
// the underlying stream only when no unconsumed input is buffered.  It
// returns false at end of input or after a read error, which is then
// available from Err.
func (r *Reader) HasNextLine() bool {
	if r.err != nil {
		return false
	}
	for r.scanner.Buffered() == 0 {
		if r.scanner.EOF() {
			return false
		}
		if err := r.scanner.Fill(); err != nil {
			r.err = err
			return false
		}
	}
	return true
}

// NextLine returns the next line without its terminating newline.  The
// caller must ensure a line is available (see HasNextLine); otherwise
// NextLine returns nil.
func (r *Reader) NextLine() []byte {
	if r.err != nil {
		return nil
	}
	line, err := r.scanner.ScanLine()
	if err != nil {
		r.err = err
		return nil
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return line
}

// NextFields returns the whitespace-separated tokens of the next line.
func (r *Reader) NextFields() *Fields {
	return NewFields(r.NextLine())
}

// Lines returns an iterator over the remaining lines.  It shares its
// position with r.
func (r *Reader) Lines() *Lines {
	return &Lines{reader: r}
}

// Err returns the first error encountered reading the underlying stream.
func (r *Reader) Err() error {
	return r.err
}

// Generation returns a counter that changes whenever previously returned
// lines may have been invalidated.
func (r *Reader) Generation() uint64 {
	return r.scanner.Generation()
}

func (r *Reader) Stats() skim.Stats {
	return r.scanner.Stats
}

type Lines struct {
	reader *Reader
}

// Next returns the next line and true, or nil and false when the input is
// exhausted or a read error occurred.  A partial line cut short by an error
// is not returned.
func (l *Lines) Next() ([]byte, bool) {
	if !l.reader.HasNextLine() {
		return nil, false
	}
	line := l.reader.NextLine()
	if l.reader.Err() != nil {
		return nil, false
	}
	return line, true
}
