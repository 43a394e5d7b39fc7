// Package byteconv converts byte slices to primitive values without
// allocating.  The Atoi and Atou families perform no validation: digits are
// accumulated with wrapping arithmetic in the target width and any
// non-digit byte contributes a garbage value rather than an error.
package byteconv

import (
	"strconv"
	"unsafe"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// UnsafeString converts a byte slice to a string without copying.  The
// string aliases b and changes if b is modified.
func UnsafeString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

func ParseFloat64(b []byte) (float64, error) {
	return strconv.ParseFloat(UnsafeString(b), 64)
}

func ParseFloat32(b []byte) (float32, error) {
	f, err := strconv.ParseFloat(UnsafeString(b), 32)
	return float32(f), err
}

// Atoi parses a base-10 signed integer with an optional leading '-'.
func Atoi[T constraints.Signed](b []byte) T {
	var neg bool
	if len(b) > 0 && b[0] == '-' {
		neg = true
		b = b[1:]
	}
	var n T
	for _, c := range b {
		n = n*10 + T(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// Atou parses a base-10 unsigned integer.  A sign is not recognized.
func Atou[T constraints.Unsigned](b []byte) T {
	var n T
	for _, c := range b {
		n = n*10 + T(c-'0')
	}
	return n
}

// Atof64 parses a float64, returning whatever strconv produced on
// malformed input (zero or ±Inf).
func Atof64(b []byte) float64 {
	f, _ := ParseFloat64(b)
	return f
}

func Atof32(b []byte) float32 {
	f, _ := ParseFloat32(b)
	return f
}

func Atof16(b []byte) float16.Float16 {
	return float16.Fromfloat32(Atof32(b))
}
