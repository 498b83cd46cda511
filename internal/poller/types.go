// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/s7"
)

// TagSpec describes one tag read.
// Geometry and type only: no naming policy.
type TagSpec struct {
	Name     string
	Area     s7.Area
	DB       int
	Offset   int // byte offset inside the area
	Bit      int // bool tags only
	Type     codec.Type
	Declared int // length of sized types
}

// Size is the number of bytes the tag occupies on the controller.
func (t TagSpec) Size() int {
	return codec.Size(t.Type, t.Declared)
}

// TagValue is the outcome of one tag in one poll cycle.
type TagValue struct {
	Name  string
	Type  codec.Type
	Value any    // decoded value; nil when Code or Err is set
	Raw   []byte // bytes as read
	Code  s7.Code
	Err   error // decode failure
}

// OK reports whether the tag was read and decoded.
func (v TagValue) OK() bool {
	return v.Code == 0 && v.Err == nil
}

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	At time.Time

	// RawErrorCode is the first non-zero per-item result code,
	// or the transaction code when the cycle failed.
	// 0 means success.
	RawErrorCode uint32

	Values []TagValue
	Err    error // non-nil means the poll cycle failed
}

// DecodeFailed reports whether a tag was read but could not be decoded.
func (r PollResult) DecodeFailed() bool {
	for _, v := range r.Values {
		if v.Code == 0 && v.Err != nil {
			return true
		}
	}
	return false
}
