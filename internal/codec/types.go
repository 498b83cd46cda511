// internal/codec/types.go
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type is the closed set of wire types the codec understands.
// Names are resolved to a Type once, at the API boundary (ParseType).
type Type uint8

const (
	TypeInvalid Type = iota

	Bool
	Byte
	SInt
	USInt
	Int
	UInt
	Word
	DInt
	UDInt
	DWord
	LInt
	ULInt
	LWord
	Real
	LReal

	Time
	LTime
	Date
	TOD
	LTOD
	DT
	LDT
	DTL

	String
	WString
	Chars
	WChars

	Counter
	IECTimer // 12-byte timer snapshot, decoded by package timer
)

var typeNames = map[Type]string{
	Bool:     "bool",
	Byte:     "byte",
	SInt:     "sint",
	USInt:    "usint",
	Int:      "int",
	UInt:     "uint",
	Word:     "word",
	DInt:     "dint",
	UDInt:    "udint",
	DWord:    "dword",
	LInt:     "lint",
	ULInt:    "ulint",
	LWord:    "lword",
	Real:     "real",
	LReal:    "lreal",
	Time:     "time",
	LTime:    "ltime",
	Date:     "date",
	TOD:      "tod",
	LTOD:     "ltod",
	DT:       "dt",
	LDT:      "ldt",
	DTL:      "dtl",
	String:   "string",
	WString:  "wstring",
	Chars:    "chars",
	WChars:   "wchars",
	Counter:  "counter",
	IECTimer: "iec_timer",
}

var typeAliases = map[string]Type{
	"bit":           Bool,
	"ldate":         LDT,
	"time_of_day":   TOD,
	"ltime_of_day":  LTOD,
	"date_and_time": DT,
	"char":          Chars,
	"wchar":         WChars,
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames)+len(typeAliases))
	for t, n := range typeNames {
		m[n] = t
	}
	for n, t := range typeAliases {
		m[n] = t
	}
	return m
}()

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// Sized reports whether t needs a declared length.
func (t Type) Sized() bool {
	switch t {
	case String, WString, Chars, WChars:
		return true
	default:
		return false
	}
}

// ParseType resolves a type name. Length-qualified forms are accepted for
// sized types: "string[10]", "string10", "wchars[4]". A bare "string" or
// "wstring" gets the default length of 254.
func ParseType(name string) (Type, int, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return TypeInvalid, 0, fmt.Errorf("%w: empty name", ErrUnsupportedType)
	}

	base, length, hasLen, err := splitLength(n)
	if err != nil {
		return TypeInvalid, 0, fmt.Errorf("%w: %q: %v", ErrUnsupportedType, name, err)
	}

	t, ok := typesByName[base]
	if !ok {
		return TypeInvalid, 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
	}

	if !t.Sized() {
		if hasLen {
			return TypeInvalid, 0, fmt.Errorf("%w: %q takes no length", ErrUnsupportedType, name)
		}
		return t, 0, nil
	}

	if !hasLen {
		if t == String || t == WString {
			return t, MaxStringLen, nil
		}
		return TypeInvalid, 0, fmt.Errorf("%w: %q requires a length", ErrUnsupportedType, name)
	}
	if length <= 0 || (t == String && length > MaxStringLen) {
		return TypeInvalid, 0, fmt.Errorf("%w: %q length out of range", ErrUnsupportedType, name)
	}
	return t, length, nil
}

// splitLength separates "name[n]" or "name<digits>" into its parts.
func splitLength(n string) (string, int, bool, error) {
	if i := strings.IndexByte(n, '['); i >= 0 {
		if !strings.HasSuffix(n, "]") {
			return "", 0, false, errors.New("unterminated length")
		}
		v, err := strconv.Atoi(n[i+1 : len(n)-1])
		if err != nil {
			return "", 0, false, err
		}
		return n[:i], v, true, nil
	}

	i := len(n)
	for i > 0 && n[i-1] >= '0' && n[i-1] <= '9' {
		i--
	}
	if i == len(n) || i == 0 {
		return n, 0, false, nil
	}
	// only sized families carry a numeric suffix; "lint" etc. never reach here
	if _, ok := typesByName[n[:i]]; !ok {
		return n, 0, false, nil
	}
	v, err := strconv.Atoi(n[i:])
	if err != nil {
		return "", 0, false, err
	}
	return n[:i], v, true, nil
}

// Size returns the wire width in bytes of t. declared is the length of
// sized types and ignored otherwise. Unknown types return 0.
func Size(t Type, declared int) int {
	switch t {
	case Bool, Byte, SInt, USInt:
		return 1
	case Int, UInt, Word, Date, Counter:
		return 2
	case DInt, UDInt, DWord, Real, Time, TOD:
		return 4
	case LInt, ULInt, LWord, LReal, LTime, LTOD, DT, LDT:
		return 8
	case DTL, IECTimer:
		return 12
	case String:
		return declared + 2
	case WString:
		return declared*2 + 4
	case Chars:
		return declared
	case WChars:
		return declared * 2
	default:
		return 0
	}
}
