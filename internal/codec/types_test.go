// internal/codec/types_test.go
package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	cases := []struct {
		in   string
		want Type
		n    int
	}{
		{"bool", Bool, 0},
		{"BIT", Bool, 0},
		{" Real ", Real, 0},
		{"ldate", LDT, 0},
		{"udint", UDInt, 0},
		{"lint", LInt, 0},
		{"time_of_day", TOD, 0},
		{"string[10]", String, 10},
		{"String20", String, 20},
		{"string", String, MaxStringLen},
		{"wstring[8]", WString, 8},
		{"chars[4]", Chars, 4},
		{"wchars3", WChars, 3},
		{"iec_timer", IECTimer, 0},
	}
	for _, c := range cases {
		got, n, err := ParseType(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
		require.Equal(t, c.n, n, c.in)
	}
}

func TestParseTypeRejects(t *testing.T) {
	for _, in := range []string{"", "float", "int[2]", "chars", "string[0]", "string[255]", "string[x]", "string[4"} {
		_, _, err := ParseType(in)
		require.ErrorIs(t, err, ErrUnsupportedType, in)
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		t        Type
		declared int
		want     int
	}{
		{Bool, 0, 1},
		{Byte, 0, 1},
		{SInt, 0, 1},
		{USInt, 0, 1},
		{Int, 0, 2},
		{UInt, 0, 2},
		{Word, 0, 2},
		{DInt, 0, 4},
		{UDInt, 0, 4},
		{DWord, 0, 4},
		{Real, 0, 4},
		{Time, 0, 4},
		{LInt, 0, 8},
		{ULInt, 0, 8},
		{LWord, 0, 8},
		{LReal, 0, 8},
		{LTime, 0, 8},
		{LDT, 0, 8},
		{DTL, 0, 12},
		{String, 10, 12},
		{WString, 10, 24},
		{Chars, 7, 7},
		{WChars, 7, 14},
		{TypeInvalid, 0, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Size(c.t, c.declared), c.t.String())
	}
}

func TestTypeNamesComplete(t *testing.T) {
	for ty := Bool; ty <= IECTimer; ty++ {
		_, ok := typeNames[ty]
		require.True(t, ok, "missing name for %d", ty)
		require.NotZero(t, Size(ty, 1), ty.String())
	}
}
