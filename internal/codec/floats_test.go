// internal/codec/floats_test.go
package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRealWireLayout(t *testing.T) {
	buf := make([]byte, 4)

	require.NoError(t, SetReal(buf, 0, 1.0))
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, buf)

	v, err := GetReal(buf, 0)
	require.NoError(t, err)
	require.Equal(t, float32(1.0), v)
}

func TestRealRoundTrip(t *testing.T) {
	buf := make([]byte, 6)
	for _, v := range []float32{0, -0.5, 3.14159, math.MaxFloat32, math.SmallestNonzeroFloat32} {
		require.NoError(t, SetReal(buf, 2, v))
		got, err := GetReal(buf, 2)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestLRealRoundTrip(t *testing.T) {
	buf := make([]byte, 8)

	require.NoError(t, SetLReal(buf, 0, -2.0))
	require.Equal(t, []byte{0xC0, 0, 0, 0, 0, 0, 0, 0}, buf)

	for _, v := range []float64{0, 1e-300, -123.456, math.MaxFloat64} {
		require.NoError(t, SetLReal(buf, 0, v))
		got, err := GetLReal(buf, 0)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	require.NoError(t, SetLReal(buf, 0, math.Inf(-1)))
	got, err := GetLReal(buf, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1))
}
