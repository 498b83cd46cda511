// internal/codec/dispatch.go
package codec

import (
	"fmt"
	"math"
	"time"
)

// Decode reads a value of type t at pos. bit is used by Bool only, declared
// by sized types only.
//
// Result types:
//
//	Bool                         bool
//	SInt, Int, DInt, LInt        int8, int16, int32, int64
//	USInt/Byte, UInt/Word        uint8, uint16
//	UDInt/DWord, ULInt/LWord     uint32, uint64
//	Real, LReal                  float32, float64
//	Time, LTime, TOD, LTOD       time.Duration
//	Date, DT, LDT, DTL           time.Time
//	String, WString, Chars, WChars string
//	Counter                      int
func Decode(buf []byte, t Type, pos, bit, declared int) (any, error) {
	switch t {
	case Bool:
		return GetBit(buf, pos, bit)
	case Byte:
		return GetByte(buf, pos)
	case SInt:
		return GetSInt(buf, pos)
	case USInt:
		return GetUSInt(buf, pos)
	case Int:
		return GetInt(buf, pos)
	case UInt:
		return GetUInt(buf, pos)
	case Word:
		return GetWord(buf, pos)
	case DInt:
		return GetDInt(buf, pos)
	case UDInt:
		return GetUDInt(buf, pos)
	case DWord:
		return GetDWord(buf, pos)
	case LInt:
		return GetLInt(buf, pos)
	case ULInt:
		return GetULInt(buf, pos)
	case LWord:
		return GetLWord(buf, pos)
	case Real:
		return GetReal(buf, pos)
	case LReal:
		return GetLReal(buf, pos)
	case Time:
		return GetTime(buf, pos)
	case LTime:
		return GetLTime(buf, pos)
	case Date:
		return GetDate(buf, pos)
	case TOD:
		return GetTOD(buf, pos)
	case LTOD:
		return GetLTOD(buf, pos)
	case DT:
		return GetDateTime(buf, pos)
	case LDT:
		return GetLDT(buf, pos)
	case DTL:
		return GetDTL(buf, pos)
	case String:
		return GetString(buf, pos)
	case WString:
		return GetWString(buf, pos)
	case Chars:
		return GetChars(buf, pos, declared)
	case WChars:
		return GetWChars(buf, pos, declared)
	case Counter:
		return GetCounter(buf, pos)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

// Encode writes v as type t at pos. Integer types accept any Go integer
// kind that fits; float types accept float32/float64.
func Encode(buf []byte, t Type, pos, bit, declared int, v any) error {
	switch t {
	case Bool:
		b, ok := v.(bool)
		if !ok {
			return valueType(t, v)
		}
		return SetBit(buf, pos, bit, b)

	case SInt:
		n, ok := asInt(v)
		if !ok {
			if !isUnsigned(v) {
				return valueType(t, v)
			}
			// unsigned beyond int64 saturates
			n = math.MaxInt64
		}
		// clamps, like SetSInt
		if n < -128 {
			n = -128
		} else if n > 127 {
			n = 127
		}
		return SetSInt(buf, pos, int(n))
	case Int:
		n, err := signed(t, v, 16)
		if err != nil {
			return err
		}
		return SetInt(buf, pos, int16(n))
	case DInt:
		n, err := signed(t, v, 32)
		if err != nil {
			return err
		}
		return SetDInt(buf, pos, int32(n))
	case LInt:
		n, err := signed(t, v, 64)
		if err != nil {
			return err
		}
		return SetLInt(buf, pos, n)

	case Byte, USInt:
		n, err := unsigned(t, v, 8)
		if err != nil {
			return err
		}
		return SetUSInt(buf, pos, uint8(n))
	case UInt, Word:
		n, err := unsigned(t, v, 16)
		if err != nil {
			return err
		}
		return SetUInt(buf, pos, uint16(n))
	case UDInt, DWord:
		n, err := unsigned(t, v, 32)
		if err != nil {
			return err
		}
		return SetUDInt(buf, pos, uint32(n))
	case ULInt, LWord:
		n, err := unsigned(t, v, 64)
		if err != nil {
			return err
		}
		return SetULInt(buf, pos, n)

	case Real:
		f, ok := asFloat(v)
		if !ok {
			return valueType(t, v)
		}
		return SetReal(buf, pos, float32(f))
	case LReal:
		f, ok := asFloat(v)
		if !ok {
			return valueType(t, v)
		}
		return SetLReal(buf, pos, f)

	case Time, LTime, TOD, LTOD:
		d, ok := v.(time.Duration)
		if !ok {
			return valueType(t, v)
		}
		switch t {
		case Time:
			return SetTime(buf, pos, d)
		case LTime:
			return SetLTime(buf, pos, d)
		case TOD:
			return SetTOD(buf, pos, d)
		default:
			return SetLTOD(buf, pos, d)
		}

	case Date, DT, LDT, DTL:
		ts, ok := v.(time.Time)
		if !ok {
			return valueType(t, v)
		}
		switch t {
		case Date:
			return SetDate(buf, pos, ts)
		case DT:
			return SetDateTime(buf, pos, ts)
		case LDT:
			return SetLDT(buf, pos, ts)
		default:
			return SetDTL(buf, pos, ts)
		}

	case String, WString, Chars, WChars:
		s, ok := v.(string)
		if !ok {
			return valueType(t, v)
		}
		switch t {
		case String:
			return SetString(buf, pos, declared, s)
		case WString:
			return SetWString(buf, pos, declared, s)
		case Chars:
			if err := span(buf, pos, declared); err != nil {
				return err
			}
			return SetChars(buf[:pos+declared], pos, s)
		default:
			if err := span(buf, pos, declared*2); err != nil {
				return err
			}
			return SetWChars(buf[:pos+declared*2], pos, s)
		}

	case Counter:
		n, ok := asInt(v)
		if !ok {
			return valueType(t, v)
		}
		if n < 0 || n > 999 {
			return fmt.Errorf("%w: counter %d", ErrOutOfRange, n)
		}
		return SetCounter(buf, pos, int(n))

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func valueType(t Type, v any) error {
	return fmt.Errorf("%w: %s cannot hold %T", ErrValueType, t, v)
}

func signed(t Type, v any, bits uint) (int64, error) {
	n, ok := asInt(v)
	if !ok {
		return 0, valueType(t, v)
	}
	if bits < 64 {
		lo, hi := -int64(1)<<(bits-1), int64(1)<<(bits-1)-1
		if n < lo || n > hi {
			return 0, fmt.Errorf("%w: %s %d", ErrOutOfRange, t, n)
		}
	}
	return n, nil
}

func unsigned(t Type, v any, bits uint) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		if bits < 64 && x > uint64(1)<<bits-1 {
			return 0, fmt.Errorf("%w: %s %d", ErrOutOfRange, t, x)
		}
		return x, nil
	case uint:
		return unsigned(t, uint64(x), bits)
	}
	n, ok := asInt(v)
	if !ok {
		return 0, valueType(t, v)
	}
	if n < 0 || (bits < 64 && uint64(n) > uint64(1)<<bits-1) {
		return 0, fmt.Errorf("%w: %s %d", ErrOutOfRange, t, n)
	}
	return uint64(n), nil
}

// asInt widens any Go integer kind except uint/uint64 values above MaxInt64.
func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		if uint64(x) > 1<<63-1 {
			return 0, false
		}
		return int64(x), true
	case uint64:
		if x > 1<<63-1 {
			return 0, false
		}
		return int64(x), true
	default:
		return 0, false
	}
}

func isUnsigned(v any) bool {
	switch v.(type) {
	case uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
