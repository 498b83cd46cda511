// internal/writer/frame.go
package writer

import (
	"math"
	"strconv"
	"time"

	"github.com/tamzrod/s7probe/internal/poller"
	"github.com/tamzrod/s7probe/internal/timer"
)

// NewFrame converts a poll result into its serialized form.
func NewFrame(res poller.PollResult) Frame {
	f := Frame{
		At:     res.At,
		Code:   res.RawErrorCode,
		Values: make([]Record, 0, len(res.Values)),
	}
	if res.Err != nil {
		f.Error = res.Err.Error()
	}

	for _, v := range res.Values {
		r := Record{
			Tag:  v.Name,
			Type: v.Type.String(),
			Code: uint32(v.Code),
		}
		switch {
		case v.Code != 0:
			r.Error = v.Code.Error()
		case v.Err != nil:
			r.Error = v.Err.Error()
		default:
			r.Value = plain(v.Value)
		}
		f.Values = append(f.Values, r)
	}
	return f
}

// plain maps decoded values onto types every encoder handles the same way.
func plain(v any) any {
	switch x := v.(type) {
	case float32:
		return finite(float64(x), v)
	case float64:
		return finite(x, v)
	case time.Duration:
		return x.String()
	case timer.Snapshot:
		return TimerRecord{
			PTMs: x.PT().Milliseconds(),
			ETMs: x.ET().Milliseconds(),
			IN:   x.IN(),
			Q:    x.Q(),
		}
	default:
		return v
	}
}

// finite spells NaN and infinities as "NaN", "+Inf", "-Inf";
// encoding/json cannot carry them.
func finite(f float64, v any) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return v
}
