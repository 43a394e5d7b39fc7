package fastin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brimdata/fastin/pkg/suggest"
	"github.com/x448/float16"
)

// Value is the closed set of types a token may be parsed into.
type Value interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float16.Float16 | float32 | float64 |
		Str
}

// Str is a token taken verbatim from a line.  It aliases the Reader's
// buffer.
type Str []byte

func (s Str) String() string {
	return string(s)
}

// Clone returns a copy of s that does not alias the Reader's buffer.
func (s Str) Clone() Str {
	if s == nil {
		return nil
	}
	return append(Str{}, s...)
}

// Kind identifies a member of Value for layouts chosen at run time.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
	KindStr
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindInt8:    "i8",
	KindInt16:   "i16",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindUint:    "uint",
	KindUint8:   "u8",
	KindUint16:  "u16",
	KindUint32:  "u32",
	KindUint64:  "u64",
	KindFloat16: "f16",
	KindFloat32: "f32",
	KindFloat64: "f64",
	KindStr:     "str",
}

var kindAliases = map[string]Kind{
	"int8":    KindInt8,
	"int16":   KindInt16,
	"int32":   KindInt32,
	"int64":   KindInt64,
	"uint8":   KindUint8,
	"byte":    KindUint8,
	"uint16":  KindUint16,
	"uint32":  KindUint32,
	"uint64":  KindUint64,
	"float16": KindFloat16,
	"float32": KindFloat32,
	"float64": KindFloat64,
	"string":  KindStr,
}

// kindSpellings lists the short names in Kind order followed by the sorted
// aliases.  It is the candidate list for misspelled names.
var kindSpellings = func() []string {
	names := append([]string{}, kindNames[KindInvalid+1:]...)
	var aliases []string
	for alias := range kindAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return append(names, aliases...)
}()

// Kinds returns the valid kinds in order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindInvalid + 1; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Aliases returns the sorted alternate names accepted for k by LookupKind.
func (k Kind) Aliases() []string {
	var aliases []string
	for alias, kind := range kindAliases {
		if kind == k {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// LookupKind returns the Kind with the given short name (e.g., "u8" or
// "f64") or Go type name (e.g., "uint8" or "float64").
func LookupKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if k != int(KindInvalid) && s == name {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return KindInvalid, fmt.Errorf("unknown kind %q%s", name, suggest.Hint(name, kindSpellings))
}

// ParseKinds parses a comma-separated list of kind names.
func ParseKinds(s string) ([]Kind, error) {
	var kinds []Kind
	for _, name := range strings.Split(s, ",") {
		k, err := LookupKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// KindOf returns the Kind corresponding to T.
func KindOf[T Value]() Kind {
	var v T
	switch any(v).(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float16.Float16:
		return KindFloat16
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case Str:
		return KindStr
	}
	return KindInvalid
}

// ParseKind parses tok as kind k.  The dynamic type of the result is the
// Go type corresponding to k.  ParseKind returns nil for KindInvalid.
func ParseKind(tok []byte, k Kind) any {
	switch k {
	case KindInt:
		return Parse[int](tok)
	case KindInt8:
		return Parse[int8](tok)
	case KindInt16:
		return Parse[int16](tok)
	case KindInt32:
		return Parse[int32](tok)
	case KindInt64:
		return Parse[int64](tok)
	case KindUint:
		return Parse[uint](tok)
	case KindUint8:
		return Parse[uint8](tok)
	case KindUint16:
		return Parse[uint16](tok)
	case KindUint32:
		return Parse[uint32](tok)
	case KindUint64:
		return Parse[uint64](tok)
	case KindFloat16:
		return Parse[float16.Float16](tok)
	case KindFloat32:
		return Parse[float32](tok)
	case KindFloat64:
		return Parse[float64](tok)
	case KindStr:
		return Parse[Str](tok)
	}
	return nil
}
