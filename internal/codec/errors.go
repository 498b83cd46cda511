// internal/codec/errors.go
package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when [pos, pos+width) does not fit in the buffer.
	ErrTruncated = errors.New("codec: truncated buffer")

	// ErrNegativeTicks is returned for negative time-of-day counts.
	ErrNegativeTicks = errors.New("codec: negative time-of-day")

	// ErrOutOfRange is returned when a value has no wire representation.
	ErrOutOfRange = errors.New("codec: value out of range")

	// ErrUnsupportedType is returned by Decode/Encode for types they do not handle.
	ErrUnsupportedType = errors.New("codec: unsupported type")

	// ErrValueType is returned by Encode when v does not match the wire type.
	ErrValueType = errors.New("codec: value type mismatch")
)

// span checks that width bytes starting at pos lie inside buf.
func span(buf []byte, pos, width int) error {
	if pos < 0 || width < 0 || pos > len(buf)-width {
		return fmt.Errorf("%w: need %d bytes at pos %d, have %d", ErrTruncated, width, pos, len(buf))
	}
	return nil
}
