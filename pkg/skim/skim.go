// Package skim provides a line scanner that hands out lines as slices of
// its internal buffer.  Unlike bufio.Scanner, the buffer grows on demand so
// a line of any length (up to an optional limit) is returned whole.
package skim

import (
	"bytes"
	"errors"
	"io"
)

var ErrLineTooLong = errors.New("line too long")

const maxEmptyReads = 100

type Stats struct {
	BytesRead int64
	Lines     int64
	Reads     int64
}

// Scanner reads newline-delimited lines from an io.Reader.  A line returned
// by ScanLine aliases the Scanner's buffer and is valid only until the next
// call to ScanLine or Fill.
type Scanner struct {
	Stats
	reader io.Reader
	buffer []byte
	// window holds the unconsumed bytes and is always a suffix of
	// buffer[:filled].
	window  []byte
	scanned int
	limit   int
	gen     uint64
	eof     bool
	err     error
}

// NewScanner returns a Scanner that reads into buf, growing it as needed.
// If limit is positive, ScanLine fails with ErrLineTooLong instead of
// growing the buffer past limit bytes.  The limit counts a line's newline,
// so a terminated line may hold at most limit-1 bytes of text while a final
// unterminated line may hold limit bytes.
func NewScanner(r io.Reader, buf []byte, limit int) *Scanner {
	if cap(buf) == 0 {
		buf = make([]byte, 4096)
	}
	buf = buf[:cap(buf)]
	return &Scanner{
		reader: r,
		buffer: buf,
		window: buf[:0],
		limit:  limit,
	}
}

// ScanLine returns the next line including its terminating newline.  The
// final line of a stream that does not end in a newline is returned as is.
// At end of stream, ScanLine returns nil and a nil error.
func (s *Scanner) ScanLine() ([]byte, error) {
	for {
		if off := bytes.IndexByte(s.window[s.scanned:], '\n'); off >= 0 {
			return s.advance(s.scanned + off + 1), nil
		}
		s.scanned = len(s.window)
		if s.eof {
			if len(s.window) == 0 {
				return nil, nil
			}
			return s.advance(len(s.window)), nil
		}
		if err := s.Fill(); err != nil {
			return nil, err
		}
	}
}

func (s *Scanner) advance(n int) []byte {
	line := s.window[:n:n]
	s.window = s.window[n:]
	s.scanned = 0
	s.Lines++
	s.gen++
	return line
}

// Buffered returns the number of unconsumed bytes in the buffer.
func (s *Scanner) Buffered() int {
	return len(s.window)
}

// EOF reports whether the underlying reader has been exhausted.
func (s *Scanner) EOF() bool {
	return s.eof
}

// Generation returns a counter that changes each time the buffer contents
// or the read cursor change.  Lines obtained under an earlier generation
// may no longer be valid.
func (s *Scanner) Generation() uint64 {
	return s.gen
}

// Fill compacts the unconsumed bytes to the front of the buffer, grows the
// buffer if it is full, and issues a single read.  A read error other than
// io.EOF is sticky and returned from every subsequent call.
func (s *Scanner) Fill() error {
	if s.err != nil {
		return s.err
	}
	if s.eof {
		return nil
	}
	s.gen++
	n := len(s.window)
	if n == len(s.buffer) {
		size := 2 * len(s.buffer)
		if s.limit > 0 && size > s.limit {
			if n >= s.limit {
				return s.overflow()
			}
			size = s.limit
		}
		buf := make([]byte, size)
		copy(buf, s.window)
		s.buffer = buf
	} else if n > 0 && &s.window[0] != &s.buffer[0] {
		copy(s.buffer, s.window)
	}
	s.window = s.buffer[:n]
	for i := 0; i < maxEmptyReads; i++ {
		cc, err := s.reader.Read(s.buffer[n:])
		s.Reads++
		if cc > 0 {
			s.BytesRead += int64(cc)
			s.window = s.buffer[:n+cc]
		}
		if err != nil {
			if err == io.EOF {
				s.eof = true
				return nil
			}
			s.err = err
			return err
		}
		if cc > 0 {
			return nil
		}
	}
	s.err = io.ErrNoProgress
	return s.err
}

// overflow is called when the buffer holds limit unconsumed bytes without a
// newline.  If the stream ends here, the bytes form a final unterminated
// line; otherwise the line is too long.
func (s *Scanner) overflow() error {
	var b [1]byte
	for i := 0; i < maxEmptyReads; i++ {
		cc, err := s.reader.Read(b[:])
		s.Reads++
		if cc > 0 {
			s.BytesRead += int64(cc)
			s.err = ErrLineTooLong
			return s.err
		}
		if err == io.EOF {
			s.eof = true
			return nil
		}
		if err != nil {
			s.err = err
			return err
		}
	}
	s.err = io.ErrNoProgress
	return s.err
}
