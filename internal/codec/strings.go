// internal/codec/strings.go
package codec

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// Length fields count bytes for STRING/CHARS and UTF-16 code units for
// WSTRING/WCHARS. Encoders truncate content silently to the declared or
// available space; truncation never splits a character.

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// MaxStringLen is the largest declared length of an S7 STRING.
const MaxStringLen = 254

// ---- STRING ----

// GetString decodes [max][len][bytes...] using the actual-length byte.
func GetString(buf []byte, pos int) (string, error) {
	if err := span(buf, pos, 2); err != nil {
		return "", err
	}
	n := int(buf[pos+1])
	if err := span(buf, pos+2, n); err != nil {
		return "", err
	}
	return string(buf[pos+2 : pos+2+n]), nil
}

// SetString writes the header and up to maxLen bytes of s.
// The buffer must hold the whole declared field (maxLen+2 bytes).
func SetString(buf []byte, pos, maxLen int, s string) error {
	if maxLen < 0 || maxLen > MaxStringLen {
		return fmt.Errorf("%w: STRING length %d", ErrOutOfRange, maxLen)
	}
	if err := span(buf, pos, maxLen+2); err != nil {
		return err
	}
	b := truncateUTF8(s, maxLen)

	buf[pos] = byte(maxLen)
	buf[pos+1] = byte(len(b))
	copy(buf[pos+2:], b)
	return nil
}

// ---- WSTRING ----

// GetWString decodes [max u16][len u16][utf16be...].
func GetWString(buf []byte, pos int) (string, error) {
	if err := span(buf, pos, 4); err != nil {
		return "", err
	}
	n, _ := GetUInt(buf, pos+2)
	if err := span(buf, pos+4, int(n)*2); err != nil {
		return "", err
	}
	return decodeUTF16(buf[pos+4 : pos+4+int(n)*2])
}

// SetWString writes the header and up to maxChars code units of s.
// The buffer must hold the whole declared field (2*maxChars+4 bytes).
func SetWString(buf []byte, pos, maxChars int, s string) error {
	if maxChars < 0 || maxChars > math.MaxUint16 {
		return fmt.Errorf("%w: WSTRING length %d", ErrOutOfRange, maxChars)
	}
	if err := span(buf, pos, maxChars*2+4); err != nil {
		return err
	}
	b, err := encodeUTF16(s, maxChars)
	if err != nil {
		return err
	}

	_ = SetUInt(buf, pos, uint16(maxChars))
	_ = SetUInt(buf, pos+2, uint16(len(b)/2))
	copy(buf[pos+4:], b)
	return nil
}

// ---- ARRAY OF CHAR ----

// GetChars decodes size raw bytes as UTF-8.
func GetChars(buf []byte, pos, size int) (string, error) {
	if err := span(buf, pos, size); err != nil {
		return "", err
	}
	return string(buf[pos : pos+size]), nil
}

// SetChars copies s to pos, truncated to the space left in buf.
func SetChars(buf []byte, pos int, s string) error {
	if err := span(buf, pos, 0); err != nil {
		return err
	}
	copy(buf[pos:], truncateUTF8(s, len(buf)-pos))
	return nil
}

// ---- ARRAY OF WCHAR ----

// GetWChars decodes size UTF-16BE code units.
func GetWChars(buf []byte, pos, size int) (string, error) {
	if err := span(buf, pos, size*2); err != nil {
		return "", err
	}
	return decodeUTF16(buf[pos : pos+size*2])
}

// SetWChars copies s to pos as UTF-16BE, truncated to the space left in buf.
func SetWChars(buf []byte, pos int, s string) error {
	if err := span(buf, pos, 0); err != nil {
		return err
	}
	b, err := encodeUTF16(s, (len(buf)-pos)/2)
	if err != nil {
		return err
	}
	copy(buf[pos:], b)
	return nil
}

// ---- helpers ----

func truncateUTF8(s string, n int) []byte {
	if len(s) <= n {
		return []byte(s)
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return []byte(s[:cut])
}

func decodeUTF16(b []byte) (string, error) {
	out, err := utf16be.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("codec: utf-16 decode: %w", err)
	}
	return string(out), nil
}

// encodeUTF16 encodes s and keeps at most units code units.
func encodeUTF16(s string, units int) ([]byte, error) {
	b, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("codec: utf-16 encode: %w", err)
	}
	if len(b) <= units*2 {
		return b, nil
	}
	b = b[:units*2]
	// drop a dangling high surrogate
	if n := len(b); n >= 2 {
		if hi := uint16(b[n-2])<<8 | uint16(b[n-1]); hi >= 0xD800 && hi <= 0xDBFF {
			b = b[:n-2]
		}
	}
	return b, nil
}
