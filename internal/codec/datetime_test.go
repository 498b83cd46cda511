// internal/codec/datetime_test.go
package codec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateTimeCenturyHeuristic(t *testing.T) {
	buf := []byte{0x95, 0x06, 0x15, 0x10, 0x20, 0x30, 0x00, 0x00}
	v, err := GetDateTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Date(1995, 6, 15, 10, 20, 30, 0, time.UTC), v)

	buf[0] = 0x05
	v, err = GetDateTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 2005, v.Year())
}

func TestDateTimeEncodeLayout(t *testing.T) {
	buf := make([]byte, 8)
	ts := time.Date(2021, 3, 4, 5, 6, 7, 891*int(time.Millisecond), time.UTC) // Thursday

	require.NoError(t, SetDateTime(buf, 0, ts))
	require.Equal(t, []byte{0x21, 0x03, 0x04, 0x05, 0x06, 0x07, 0x89, 0x15}, buf)

	got, err := GetDateTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts, got)
}

func TestDateTimeNineties(t *testing.T) {
	buf := make([]byte, 8)
	ts := time.Date(1999, 12, 31, 23, 59, 59, 0, time.UTC)

	require.NoError(t, SetDateTime(buf, 0, ts))
	require.Equal(t, byte(0x99), buf[0])

	got, err := GetDateTime(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts, got)

	require.ErrorIs(t, SetDateTime(buf, 0, time.Date(2090, 1, 1, 0, 0, 0, 0, time.UTC)), ErrOutOfRange)
}

func TestDateTimeInvalidCalendarIsSentinel(t *testing.T) {
	// 2023-02-30
	buf := []byte{0x23, 0x02, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00}
	v, err := GetDateTime(buf, 0)
	require.NoError(t, err)
	require.True(t, v.IsZero())

	// month 13
	buf = []byte{0x23, 0x13, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00}
	v, err = GetDateTime(buf, 0)
	require.NoError(t, err)
	require.True(t, v.IsZero())

	_, err = GetDateTime(buf, 1)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDate(t *testing.T) {
	buf := make([]byte, 2)

	require.NoError(t, SetDate(buf, 0, time.Date(2000, 1, 1, 13, 0, 0, 0, time.UTC)))
	require.Equal(t, []byte{0x0E, 0x44}, buf) // 3652 days

	v, err := GetDate(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), v)

	v, err = GetDate([]byte{0, 0}, 0)
	require.NoError(t, err)
	require.Equal(t, dateEpoch, v)

	require.ErrorIs(t, SetDate(buf, 0, time.Date(1989, 12, 31, 0, 0, 0, 0, time.UTC)), ErrOutOfRange)
}

func TestTOD(t *testing.T) {
	buf := make([]byte, 4)

	require.NoError(t, SetTOD(buf, 0, 12*time.Hour))
	require.Equal(t, []byte{0x02, 0x93, 0x2E, 0x00}, buf) // 43 200 000

	v, err := GetTOD(buf, 0)
	require.NoError(t, err)
	require.Equal(t, 12*time.Hour, v)

	require.NoError(t, SetDInt(buf, 0, -1))
	_, err = GetTOD(buf, 0)
	require.ErrorIs(t, err, ErrNegativeTicks)

	require.ErrorIs(t, SetTOD(buf, 0, 25*time.Hour), ErrOutOfRange)
}

func TestTODLastMillisecondStaysInDay(t *testing.T) {
	buf := make([]byte, 4)

	require.NoError(t, SetTOD(buf, 0, 24*time.Hour-400*time.Microsecond))
	ms, err := GetDInt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, int32(86_399_999), ms)

	require.NoError(t, SetTOD(buf, 0, 1500*time.Microsecond))
	ms, _ = GetDInt(buf, 0)
	require.Equal(t, int32(1), ms)
}

func TestLDTFarYearsRejected(t *testing.T) {
	buf := make([]byte, 8)

	for _, year := range []int{100_000, 1_000_000, -1_000_000} {
		ts := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		require.ErrorIs(t, SetLDT(buf, 0, ts), ErrOutOfRange, "year %d", year)
	}
	require.Equal(t, make([]byte, 8), buf)
}

func TestTimeOfDayHelper(t *testing.T) {
	ts := time.Date(2024, 5, 1, 1, 2, 3, 4, time.UTC)
	require.Equal(t, time.Hour+2*time.Minute+3*time.Second+4, TimeOfDay(ts))
}

func TestLTOD(t *testing.T) {
	buf := make([]byte, 8)

	require.NoError(t, SetLInt(buf, 0, 1234567891))
	v, err := GetLTOD(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Duration(1234567800), v)

	d := 23*time.Hour + 59*time.Minute + 123456700
	require.NoError(t, SetLTOD(buf, 0, d))
	v, err = GetLTOD(buf, 0)
	require.NoError(t, err)
	require.Equal(t, d, v)

	require.NoError(t, SetLInt(buf, 0, -100))
	_, err = GetLTOD(buf, 0)
	require.ErrorIs(t, err, ErrNegativeTicks)
}

func TestLDT(t *testing.T) {
	buf := make([]byte, 8)

	v, err := GetLDT(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Unix(0, 0).UTC(), v)

	ts := time.Date(2024, 2, 29, 13, 14, 15, 123456700, time.UTC)
	require.NoError(t, SetLDT(buf, 0, ts))
	ns, err := GetLInt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts.UnixNano(), ns)

	v, err = GetLDT(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts, v)

	// below tick resolution is dropped
	require.NoError(t, SetLInt(buf, 0, 199))
	v, err = GetLDT(buf, 0)
	require.NoError(t, err)
	require.Equal(t, time.Unix(0, 100).UTC(), v)

	require.ErrorIs(t, SetLDT(buf, 0, time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)), ErrOutOfRange)
}

func TestTicksBias(t *testing.T) {
	require.Equal(t, unixEpochTicks, toTicks(time.Unix(0, 0)))
	require.Equal(t, int64(0), toTicks(time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC), fromTicks(0))
	require.True(t, fromTicks(-1).IsZero())
}

func TestDTL(t *testing.T) {
	buf := make([]byte, 12)
	ts := time.Date(2024, 2, 29, 13, 14, 15, 123*int(time.Millisecond), time.UTC) // Thursday

	require.NoError(t, SetDTL(buf, 0, ts))
	require.Equal(t, []byte{0x07, 0xE8, 2, 29, 5, 13, 14, 15, 0x07, 0x54, 0xD4, 0xC0}, buf)

	got, err := GetDTL(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts, got)

	// sub-millisecond precision is not preserved
	require.NoError(t, SetDTL(buf, 0, ts.Add(999*time.Microsecond)))
	got, err = GetDTL(buf, 0)
	require.NoError(t, err)
	require.Equal(t, ts, got)

	buf[2] = 13
	got, err = GetDTL(buf, 0)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = GetDTL(buf[:11], 0)
	require.ErrorIs(t, err, ErrTruncated)
}
