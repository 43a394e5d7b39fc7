package fastin

// Fields iterates over the tokens of a line.  Tokens are separated by runs
// of ASCII spaces and tabs and alias the line.
type Fields struct {
	line []byte
}

func NewFields(line []byte) *Fields {
	return &Fields{line: line}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// Next returns the next token and true, or nil and false when the line has
// no more tokens.
func (f *Fields) Next() ([]byte, bool) {
	line := f.line
	start := 0
	for start < len(line) && isSpace(line[start]) {
		start++
	}
	if start == len(line) {
		f.line = nil
		return nil, false
	}
	end := start + 1
	for end < len(line) && !isSpace(line[end]) {
		end++
	}
	f.line = line[end:]
	return line[start:end:end], true
}

// Token returns the next token or nil if there are none.
func (f *Fields) Token() []byte {
	tok, _ := f.Next()
	return tok
}

// Rest returns the unconsumed remainder of the line.
func (f *Fields) Rest() []byte {
	return f.line
}
