// internal/codec/bits.go
package codec

var bitMask = [8]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}

// clampBit pins bit into 0..7.
// Out-of-range indexes are clamped, never rejected (wire compatibility).
func clampBit(bit int) int {
	if bit < 0 {
		return 0
	}
	if bit > 7 {
		return 7
	}
	return bit
}

// GetBit returns bit of the byte at pos.
func GetBit(buf []byte, pos, bit int) (bool, error) {
	if err := span(buf, pos, 1); err != nil {
		return false, err
	}
	return buf[pos]&bitMask[clampBit(bit)] != 0, nil
}

// SetBit sets or clears bit of the byte at pos, leaving the other bits untouched.
func SetBit(buf []byte, pos, bit int, v bool) error {
	if err := span(buf, pos, 1); err != nil {
		return err
	}
	m := bitMask[clampBit(bit)]
	if v {
		buf[pos] |= m
	} else {
		buf[pos] &^= m
	}
	return nil
}
