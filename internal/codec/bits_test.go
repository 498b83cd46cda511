// internal/codec/bits_test.go
package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetBitTouchesOnlyTarget(t *testing.T) {
	buf := []byte{0x00}

	require.NoError(t, SetBit(buf, 0, 3, true))
	require.Equal(t, byte(0x08), buf[0])

	on, err := GetBit(buf, 0, 3)
	require.NoError(t, err)
	require.True(t, on)

	for bit := 0; bit < 8; bit++ {
		if bit == 3 {
			continue
		}
		v, err := GetBit(buf, 0, bit)
		require.NoError(t, err)
		require.False(t, v, "bit %d", bit)
	}

	buf[0] = 0xFF
	require.NoError(t, SetBit(buf, 0, 3, false))
	require.Equal(t, byte(0xF7), buf[0])
}

func TestBitIndexClamped(t *testing.T) {
	buf := []byte{0x00}

	require.NoError(t, SetBit(buf, 0, 42, true))
	require.Equal(t, byte(0x80), buf[0])

	require.NoError(t, SetBit(buf, 0, -3, true))
	require.Equal(t, byte(0x81), buf[0])

	v, err := GetBit(buf, 0, 99)
	require.NoError(t, err)
	require.True(t, v)
}

func TestBitOutOfBuffer(t *testing.T) {
	_, err := GetBit([]byte{}, 0, 0)
	require.ErrorIs(t, err, ErrTruncated)
	require.ErrorIs(t, SetBit([]byte{0}, 1, 0, true), ErrTruncated)
}
