// internal/codec/datetime.go
package codec

import (
	"fmt"
	"math"
	"time"
)

// Decoded calendar values are UTC; the wire carries no zone.
// A decode that yields an impossible calendar date returns time.Time{}
// (the "epoch zero" sentinel) instead of an error.

const (
	tickNanos      = 100
	ticksPerSecond = int64(time.Second / tickNanos)

	// unixEpochTicks is the number of 100 ns ticks between
	// 0001-01-01T00:00:00 and 1970-01-01T00:00:00.
	unixEpochTicks int64 = 621355968000000000

	// maxTicks is 9999-12-31T23:59:59.9999999.
	maxTicks int64 = 3155378975999999999
)

var dateEpoch = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

func bcdToByte(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

func byteToBCD(v int) byte {
	return byte((v/10)<<4 | v%10)
}

// civil builds a UTC time from raw fields, or the zero sentinel when the
// fields do not form a valid calendar instant.
func civil(year, month, day, hour, min, sec, nsec int) time.Time {
	if year < 1 || year > 9999 || month < 1 || month > 12 {
		return time.Time{}
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 {
		return time.Time{}
	}
	if nsec < 0 || nsec > 999999999 {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, nsec, time.UTC)
}

func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// fromTicks converts 100 ns ticks since 0001-01-01 into a UTC time.
func fromTicks(ticks int64) time.Time {
	if ticks < 0 || ticks > maxTicks {
		return time.Time{}
	}
	rel := ticks - unixEpochTicks
	return time.Unix(rel/ticksPerSecond, (rel%ticksPerSecond)*tickNanos).UTC()
}

// toTicks converts t into 100 ns ticks since 0001-01-01.
func toTicks(t time.Time) int64 {
	return t.Unix()*ticksPerSecond + int64(t.Nanosecond())/tickNanos + unixEpochTicks
}

// TimeOfDay returns the wall-clock offset of t from its midnight.
func TimeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// ---- DATE_AND_TIME (BCD) ----

// GetDateTime decodes an 8-byte BCD DATE_AND_TIME.
// Two-digit years below 90 are 20xx, the rest 19xx.
func GetDateTime(buf []byte, pos int) (time.Time, error) {
	if err := span(buf, pos, 8); err != nil {
		return time.Time{}, err
	}

	year := bcdToByte(buf[pos])
	if year < 90 {
		year += 2000
	} else {
		year += 1900
	}

	month := bcdToByte(buf[pos+1])
	day := bcdToByte(buf[pos+2])
	hour := bcdToByte(buf[pos+3])
	min := bcdToByte(buf[pos+4])
	sec := bcdToByte(buf[pos+5])
	// bytes 6..7: three millisecond digits, then the weekday nibble
	msec := bcdToByte(buf[pos+6])*10 + bcdToByte(buf[pos+7])/10

	return civil(year, month, day, hour, min, sec, msec*int(time.Millisecond)), nil
}

// SetDateTime encodes t as BCD DATE_AND_TIME. Representable years are 1990..2089.
func SetDateTime(buf []byte, pos int, t time.Time) error {
	if err := span(buf, pos, 8); err != nil {
		return err
	}
	if t.Year() < 1990 || t.Year() > 2089 {
		return fmt.Errorf("%w: DATE_AND_TIME year %d", ErrOutOfRange, t.Year())
	}

	msec := t.Nanosecond() / int(time.Millisecond)
	dow := int(t.Weekday()) + 1 // Sunday = 1

	buf[pos] = byteToBCD(t.Year() % 100)
	buf[pos+1] = byteToBCD(int(t.Month()))
	buf[pos+2] = byteToBCD(t.Day())
	buf[pos+3] = byteToBCD(t.Hour())
	buf[pos+4] = byteToBCD(t.Minute())
	buf[pos+5] = byteToBCD(t.Second())
	buf[pos+6] = byteToBCD(msec / 10)
	buf[pos+7] = byteToBCD((msec%10)*10 + dow)
	return nil
}

// ---- DATE ----

// GetDate decodes a day count from 1990-01-01.
func GetDate(buf []byte, pos int) (time.Time, error) {
	days, err := GetUInt(buf, pos)
	if err != nil {
		return time.Time{}, err
	}
	return dateEpoch.AddDate(0, 0, int(days)), nil
}

// SetDate encodes the calendar date of t. The clock part is ignored.
func SetDate(buf []byte, pos int, t time.Time) error {
	if err := span(buf, pos, 2); err != nil {
		return err
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(dateEpoch) {
		return fmt.Errorf("%w: DATE before 1990-01-01", ErrOutOfRange)
	}
	days := int64(d.Sub(dateEpoch) / (24 * time.Hour))
	if days > math.MaxUint16 {
		return fmt.Errorf("%w: DATE %s", ErrOutOfRange, d.Format(time.DateOnly))
	}
	return SetUInt(buf, pos, uint16(days))
}

// ---- TIME_OF_DAY ----

// GetTOD decodes milliseconds since midnight.
func GetTOD(buf []byte, pos int) (time.Duration, error) {
	ms, err := GetDInt(buf, pos)
	if err != nil {
		return 0, err
	}
	if ms < 0 {
		return 0, fmt.Errorf("%w: %d ms", ErrNegativeTicks, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// SetTOD encodes d, truncated to the millisecond. d must lie within one day.
func SetTOD(buf []byte, pos int, d time.Duration) error {
	if d < 0 || d >= 24*time.Hour {
		return fmt.Errorf("%w: TIME_OF_DAY %s", ErrOutOfRange, d)
	}
	return SetDInt(buf, pos, int32(d/time.Millisecond))
}

// ---- LTIME_OF_DAY ----

// GetLTOD decodes nanoseconds since midnight at 100 ns tick resolution.
// Negative counts are rejected as malformed.
func GetLTOD(buf []byte, pos int) (time.Duration, error) {
	ns, err := GetLInt(buf, pos)
	if err != nil {
		return 0, err
	}
	if ns < 0 {
		return 0, fmt.Errorf("%w: %d ns", ErrNegativeTicks, ns)
	}
	return time.Duration(ns / tickNanos * tickNanos), nil
}

// SetLTOD encodes d, truncated to 100 ns ticks. d must lie within one day.
func SetLTOD(buf []byte, pos int, d time.Duration) error {
	if d < 0 || d >= 24*time.Hour {
		return fmt.Errorf("%w: LTIME_OF_DAY %s", ErrOutOfRange, d)
	}
	return SetLInt(buf, pos, int64(d)/tickNanos*tickNanos)
}

// ---- LDT ----

// GetLDT decodes nanoseconds since the Unix epoch at 100 ns tick resolution.
func GetLDT(buf []byte, pos int) (time.Time, error) {
	ns, err := GetLInt(buf, pos)
	if err != nil {
		return time.Time{}, err
	}
	return fromTicks(ns/tickNanos + unixEpochTicks), nil
}

// maxLDTSeconds bounds |t.Unix()| for LDT: int64 nanoseconds since the epoch.
const maxLDTSeconds = math.MaxInt64 / int64(time.Second)

// SetLDT encodes t. Representable instants span roughly 1677..2262.
func SetLDT(buf []byte, pos int, t time.Time) error {
	if err := span(buf, pos, 8); err != nil {
		return err
	}
	// bound seconds first; the tick product overflows for far years
	if sec := t.Unix(); sec > maxLDTSeconds || sec < -maxLDTSeconds {
		return fmt.Errorf("%w: LDT %s", ErrOutOfRange, t)
	}
	rel := toTicks(t) - unixEpochTicks
	if rel > math.MaxInt64/tickNanos || rel < math.MinInt64/tickNanos {
		return fmt.Errorf("%w: LDT %s", ErrOutOfRange, t)
	}
	return SetLInt(buf, pos, rel*tickNanos)
}

// ---- DTL ----

// GetDTL decodes the 12-byte DTL layout:
// year(2) month day weekday hour min sec nanoseconds(4).
// Precision below one millisecond is dropped.
func GetDTL(buf []byte, pos int) (time.Time, error) {
	if err := span(buf, pos, 12); err != nil {
		return time.Time{}, err
	}

	year, _ := GetUInt(buf, pos)
	month := int(buf[pos+2])
	day := int(buf[pos+3])
	// buf[pos+4] is the weekday, derived on decode
	hour := int(buf[pos+5])
	min := int(buf[pos+6])
	sec := int(buf[pos+7])
	ns, _ := GetUDInt(buf, pos+8)
	msec := int(ns / 1000000)

	return civil(int(year), month, day, hour, min, sec, msec*int(time.Millisecond)), nil
}

// SetDTL encodes t in the 12-byte DTL layout. Years must fit in a word.
func SetDTL(buf []byte, pos int, t time.Time) error {
	if err := span(buf, pos, 12); err != nil {
		return err
	}
	if t.Year() < 0 || t.Year() > math.MaxUint16 {
		return fmt.Errorf("%w: DTL year %d", ErrOutOfRange, t.Year())
	}

	msec := t.Nanosecond() / int(time.Millisecond)

	_ = SetUInt(buf, pos, uint16(t.Year()))
	buf[pos+2] = byte(t.Month())
	buf[pos+3] = byte(t.Day())
	buf[pos+4] = byte(t.Weekday() + 1)
	buf[pos+5] = byte(t.Hour())
	buf[pos+6] = byte(t.Minute())
	buf[pos+7] = byte(t.Second())
	return SetUDInt(buf, pos+8, uint32(msec*1000000))
}
