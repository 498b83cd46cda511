// internal/codec/duration_test.go
package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	for _, d := range []time.Duration{0, -1500 * time.Millisecond, 24 * 24 * time.Hour} {
		require.NoError(t, SetTime(buf, 0, d))
		got, err := GetTime(buf, 0)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	require.NoError(t, SetTime(buf, 0, time.Second))
	require.Equal(t, []byte{0, 0, 0x03, 0xE8}, buf)

	require.ErrorIs(t, SetTime(buf, 0, 30*24*time.Hour), ErrOutOfRange)
}

func TestLTimeTickResolution(t *testing.T) {
	buf := make([]byte, 8)

	require.NoError(t, SetLTime(buf, 0, 1234567899))
	got, err := GetLTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Duration(1234567800), got)

	require.NoError(t, SetLTime(buf, 0, -3*time.Second))
	got, err = GetLTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, -3*time.Second, got)
}

func TestCounterBCD(t *testing.T) {
	v, err := GetCounter([]byte{0x01, 0x23}, 0)
	require.NoError(t, err)
	require.Equal(t, 123, v)

	buf := make([]byte, 2)
	require.NoError(t, SetCounter(buf, 0, 999))
	require.Equal(t, []byte{0x09, 0x99}, buf)

	require.ErrorIs(t, SetCounter(buf, 0, 1000), ErrOutOfRange)
}
