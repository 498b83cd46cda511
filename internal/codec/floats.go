// internal/codec/floats.go
package codec

import (
	"encoding/binary"
	"math"
)

// GetReal decodes an IEEE-754 single (S7 REAL).
func GetReal(buf []byte, pos int) (float32, error) {
	u, err := GetUDInt(buf, pos)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// SetReal writes v by reversing the little-endian host layout byte by byte.
func SetReal(buf []byte, pos int, v float32) error {
	if err := span(buf, pos, 4); err != nil {
		return err
	}
	var host [4]byte
	binary.LittleEndian.PutUint32(host[:], math.Float32bits(v))

	buf[pos] = host[3]
	buf[pos+1] = host[2]
	buf[pos+2] = host[1]
	buf[pos+3] = host[0]
	return nil
}

// GetLReal decodes an IEEE-754 double (S7 LREAL).
func GetLReal(buf []byte, pos int) (float64, error) {
	u, err := GetULInt(buf, pos)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// SetLReal encodes a 64-bit IEEE-754 float (S7 LREAL).
func SetLReal(buf []byte, pos int, v float64) error {
	if err := span(buf, pos, 8); err != nil {
		return err
	}
	var host [8]byte
	binary.LittleEndian.PutUint64(host[:], math.Float64bits(v))

	for i := 0; i < 8; i++ {
		buf[pos+i] = host[7-i]
	}
	return nil
}
