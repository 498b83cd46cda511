// internal/timer/snapshot.go
package timer

import (
	"fmt"
	"time"

	"github.com/tamzrod/s7probe/internal/codec"
)

// SegmentSize is the wire size of an IEC timer record.
//
// Layout:
//
//	0–3  PT  preset time, DINT milliseconds
//	4–7  ET  elapsed time, DINT milliseconds
//	8    bit 0 IN, bit 1 Q
//	9–11 reserved
const SegmentSize = 12

// Snapshot is a read-only view of one IEC timer.
// It is immutable once built.
type Snapshot struct {
	pt    time.Duration
	et    time.Duration
	input bool
	q     bool
}

// Parse builds a Snapshot from exactly SegmentSize bytes.
// Any other length yields the zero Snapshot, not an error.
func Parse(seg []byte) Snapshot {
	if len(seg) != SegmentSize {
		return Snapshot{}
	}

	pt, _ := codec.GetTime(seg, 0)
	et, _ := codec.GetTime(seg, 4)
	in, _ := codec.GetBit(seg, 8, 0)
	q, _ := codec.GetBit(seg, 8, 1)

	return Snapshot{pt: pt, et: et, input: in, q: q}
}

// ParseAt builds a Snapshot from the 12-byte window of buf starting at pos.
// The window must fit inside buf.
func ParseAt(buf []byte, pos int) (Snapshot, error) {
	if !fits(buf, pos) {
		return Snapshot{}, overrun(buf, pos)
	}
	return Parse(buf[pos : pos+SegmentSize]), nil
}

// Encode writes s at pos. Reserved bytes and other bits of byte 8 are left as-is.
func Encode(buf []byte, pos int, s Snapshot) error {
	if !fits(buf, pos) {
		return overrun(buf, pos)
	}
	if err := codec.SetTime(buf, pos, s.pt); err != nil {
		return err
	}
	if err := codec.SetTime(buf, pos+4, s.et); err != nil {
		return err
	}
	_ = codec.SetBit(buf, pos+8, 0, s.input)
	_ = codec.SetBit(buf, pos+8, 1, s.q)
	return nil
}

// New builds a Snapshot from field values.
func New(pt, et time.Duration, in, q bool) Snapshot {
	return Snapshot{pt: pt, et: et, input: in, q: q}
}

// PT is the preset time.
func (s Snapshot) PT() time.Duration { return s.pt }

// ET is the elapsed time.
func (s Snapshot) ET() time.Duration { return s.et }

// IN is the timer input.
func (s Snapshot) IN() bool { return s.input }

// Q is the timer output.
func (s Snapshot) Q() bool { return s.q }

// Remaining is PT-ET, floored at zero.
func (s Snapshot) Remaining() time.Duration {
	if s.et >= s.pt {
		return 0
	}
	return s.pt - s.et
}

func fits(buf []byte, pos int) bool {
	return pos >= 0 && pos <= len(buf)-SegmentSize
}

func overrun(buf []byte, pos int) error {
	return fmt.Errorf("%w: timer window at pos %d, have %d", codec.ErrTruncated, pos, len(buf))
}
