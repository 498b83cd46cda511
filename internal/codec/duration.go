// internal/codec/duration.go
package codec

import (
	"fmt"
	"math"
	"time"
)

// GetTime decodes a signed 32-bit millisecond duration (S7 TIME).
func GetTime(buf []byte, pos int) (time.Duration, error) {
	ms, err := GetDInt(buf, pos)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// SetTime encodes d as int32 milliseconds.
func SetTime(buf []byte, pos int, d time.Duration) error {
	ms := d.Milliseconds()
	if ms > math.MaxInt32 || ms < math.MinInt32 {
		return fmt.Errorf("%w: TIME %s", ErrOutOfRange, d)
	}
	return SetDInt(buf, pos, int32(ms))
}

// GetLTime decodes a signed 64-bit nanosecond duration (S7 LTIME)
// at 100 ns tick resolution.
func GetLTime(buf []byte, pos int) (time.Duration, error) {
	ns, err := GetLInt(buf, pos)
	if err != nil {
		return 0, err
	}
	return time.Duration(ns / tickNanos * tickNanos), nil
}

// SetLTime encodes d, truncated to 100 ns ticks.
func SetLTime(buf []byte, pos int, d time.Duration) error {
	return SetLInt(buf, pos, int64(d)/tickNanos*tickNanos)
}

// ---- COUNTER ----

// GetCounter decodes a three-digit BCD counter word (hundreds in the first byte).
func GetCounter(buf []byte, pos int) (int, error) {
	if err := span(buf, pos, 2); err != nil {
		return 0, err
	}
	return bcdToByte(buf[pos])*100 + bcdToByte(buf[pos+1]), nil
}

// SetCounter encodes v (0..999) as a BCD counter word.
func SetCounter(buf []byte, pos int, v int) error {
	if err := span(buf, pos, 2); err != nil {
		return err
	}
	if v < 0 || v > 999 {
		return fmt.Errorf("%w: counter %d", ErrOutOfRange, v)
	}
	buf[pos] = byteToBCD(v / 100)
	buf[pos+1] = byteToBCD(v % 100)
	return nil
}
