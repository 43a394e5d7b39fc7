package fastin

import (
	"github.com/brimdata/fastin/pkg/byteconv"
	"github.com/x448/float16"
)

// Parse converts a single token to T without validation.
func Parse[T Value](tok []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int:
		*p = byteconv.Atoi[int](tok)
	case *int8:
		*p = byteconv.Atoi[int8](tok)
	case *int16:
		*p = byteconv.Atoi[int16](tok)
	case *int32:
		*p = byteconv.Atoi[int32](tok)
	case *int64:
		*p = byteconv.Atoi[int64](tok)
	case *uint:
		*p = byteconv.Atou[uint](tok)
	case *uint8:
		*p = byteconv.Atou[uint8](tok)
	case *uint16:
		*p = byteconv.Atou[uint16](tok)
	case *uint32:
		*p = byteconv.Atou[uint32](tok)
	case *uint64:
		*p = byteconv.Atou[uint64](tok)
	case *float16.Float16:
		*p = byteconv.Atof16(tok)
	case *float32:
		*p = byteconv.Atof32(tok)
	case *float64:
		*p = byteconv.Atof64(tok)
	case *Str:
		*p = Str(tok)
	}
	return v
}

// Next parses the first token of the next line.
func Next[T Value](r *Reader) T {
	f := Fields{line: r.NextLine()}
	return Parse[T](f.Token())
}

// Tuple2 parses the first two tokens of the next line.
func Tuple2[T1, T2 Value](r *Reader) (T1, T2) {
	f := Fields{line: r.NextLine()}
	return Parse[T1](f.Token()), Parse[T2](f.Token())
}

// Tuple3 parses the first three tokens of the next line.
func Tuple3[T1, T2, T3 Value](r *Reader) (T1, T2, T3) {
	f := Fields{line: r.NextLine()}
	return Parse[T1](f.Token()), Parse[T2](f.Token()), Parse[T3](f.Token())
}

// Tuple4 parses the first four tokens of the next line.
func Tuple4[T1, T2, T3, T4 Value](r *Reader) (T1, T2, T3, T4) {
	f := Fields{line: r.NextLine()}
	return Parse[T1](f.Token()), Parse[T2](f.Token()), Parse[T3](f.Token()),
		Parse[T4](f.Token())
}

// Tuple5 parses the first five tokens of the next line.
func Tuple5[T1, T2, T3, T4, T5 Value](r *Reader) (T1, T2, T3, T4, T5) {
	f := Fields{line: r.NextLine()}
	return Parse[T1](f.Token()), Parse[T2](f.Token()), Parse[T3](f.Token()),
		Parse[T4](f.Token()), Parse[T5](f.Token())
}

// Iterator yields the tokens of one line parsed as T.
type Iterator[T Value] struct {
	fields Fields
}

// Iter consumes the next line and returns an Iterator over its tokens.
func Iter[T Value](r *Reader) *Iterator[T] {
	return &Iterator[T]{fields: Fields{line: r.NextLine()}}
}

func (i *Iterator[T]) Next() (T, bool) {
	tok, ok := i.fields.Next()
	if !ok {
		var zero T
		return zero, false
	}
	return Parse[T](tok), true
}

// Append appends the remaining values to dst and returns the result.
func (i *Iterator[T]) Append(dst []T) []T {
	for {
		v, ok := i.Next()
		if !ok {
			return dst
		}
		dst = append(dst, v)
	}
}
