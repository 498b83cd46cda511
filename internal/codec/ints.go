// internal/codec/ints.go
package codec

import (
	"encoding/binary"
)

// ---- SIGNED ----

// GetSInt decodes an 8-bit signed value (S7 SINT).
func GetSInt(buf []byte, pos int) (int8, error) {
	if err := span(buf, pos, 1); err != nil {
		return 0, err
	}
	v := int(buf[pos])
	if v >= 128 {
		v -= 256
	}
	return int8(v), nil
}

// SetSInt encodes v as an 8-bit signed value.
// NOTE: v is clamped into [-128, 127], not rejected.
func SetSInt(buf []byte, pos int, v int) error {
	if err := span(buf, pos, 1); err != nil {
		return err
	}
	if v < -128 {
		v = -128
	}
	if v > 127 {
		v = 127
	}
	buf[pos] = byte(int8(v))
	return nil
}

// GetInt decodes a 16-bit signed value (S7 INT).
func GetInt(buf []byte, pos int) (int16, error) {
	if err := span(buf, pos, 2); err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(buf[pos:])), nil
}

// SetInt encodes a 16-bit signed integer (S7 INT).
func SetInt(buf []byte, pos int, v int16) error {
	if err := span(buf, pos, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(buf[pos:], uint16(v))
	return nil
}

// GetDInt decodes a 32-bit signed value (S7 DINT).
func GetDInt(buf []byte, pos int) (int32, error) {
	if err := span(buf, pos, 4); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[pos:])), nil
}

// SetDInt encodes a 32-bit signed integer (S7 DINT).
func SetDInt(buf []byte, pos int, v int32) error {
	if err := span(buf, pos, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[pos:], uint32(v))
	return nil
}

// GetLInt decodes a 64-bit signed value (S7 LINT).
func GetLInt(buf []byte, pos int) (int64, error) {
	if err := span(buf, pos, 8); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(buf[pos:])), nil
}

// SetLInt encodes a 64-bit signed integer (S7 LINT).
func SetLInt(buf []byte, pos int, v int64) error {
	if err := span(buf, pos, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf[pos:], uint64(v))
	return nil
}

// ---- UNSIGNED ----

// GetUSInt decodes an unsigned byte (S7 USINT).
func GetUSInt(buf []byte, pos int) (uint8, error) {
	if err := span(buf, pos, 1); err != nil {
		return 0, err
	}
	return buf[pos], nil
}

// SetUSInt encodes an unsigned byte (S7 USINT).
func SetUSInt(buf []byte, pos int, v uint8) error {
	if err := span(buf, pos, 1); err != nil {
		return err
	}
	buf[pos] = v
	return nil
}

// GetUInt decodes a 16-bit unsigned integer (S7 UINT).
func GetUInt(buf []byte, pos int) (uint16, error) {
	if err := span(buf, pos, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[pos:]), nil
}

// SetUInt encodes a 16-bit unsigned integer (S7 UINT).
func SetUInt(buf []byte, pos int, v uint16) error {
	if err := span(buf, pos, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(buf[pos:], v)
	return nil
}

// GetUDInt decodes a 32-bit unsigned integer (S7 UDINT).
func GetUDInt(buf []byte, pos int) (uint32, error) {
	if err := span(buf, pos, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[pos:]), nil
}

// SetUDInt encodes a 32-bit unsigned integer (S7 UDINT).
func SetUDInt(buf []byte, pos int, v uint32) error {
	if err := span(buf, pos, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[pos:], v)
	return nil
}

// GetULInt decodes a 64-bit unsigned integer (S7 ULINT).
func GetULInt(buf []byte, pos int) (uint64, error) {
	if err := span(buf, pos, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[pos:]), nil
}

// SetULInt encodes a 64-bit unsigned integer (S7 ULINT).
func SetULInt(buf []byte, pos int, v uint64) error {
	if err := span(buf, pos, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(buf[pos:], v)
	return nil
}

// ---- WORD ALIASES ----
// BYTE, WORD, DWORD and LWORD share the unsigned layouts.

// GetByte decodes a BYTE.
func GetByte(buf []byte, pos int) (uint8, error) { return GetUSInt(buf, pos) }

// SetByte encodes a BYTE.
func SetByte(buf []byte, pos int, v uint8) error { return SetUSInt(buf, pos, v) }

// GetWord decodes a WORD.
func GetWord(buf []byte, pos int) (uint16, error) { return GetUInt(buf, pos) }

// SetWord encodes a WORD.
func SetWord(buf []byte, pos int, v uint16) error { return SetUInt(buf, pos, v) }

// GetDWord decodes a DWORD.
func GetDWord(buf []byte, pos int) (uint32, error) { return GetUDInt(buf, pos) }

// SetDWord encodes a DWORD.
func SetDWord(buf []byte, pos int, v uint32) error { return SetUDInt(buf, pos, v) }

// GetLWord decodes an LWORD.
func GetLWord(buf []byte, pos int) (uint64, error) { return GetULInt(buf, pos) }

// SetLWord encodes an LWORD.
func SetLWord(buf []byte, pos int, v uint64) error { return SetULInt(buf, pos, v) }
