// internal/writer/types.go
package writer

import (
	"time"

	"github.com/tamzrod/s7probe/internal/poller"
)

// Writer delivers poll snapshots to an output.
type Writer interface {
	Write(res poller.PollResult) error
}

// Frame is the serialized form of one poll cycle.
type Frame struct {
	At     time.Time `json:"at" cbor:"at" msgpack:"at"`
	Code   uint32    `json:"code,omitempty" cbor:"code,omitempty" msgpack:"code,omitempty"`
	Error  string    `json:"error,omitempty" cbor:"error,omitempty" msgpack:"error,omitempty"`
	Values []Record  `json:"values" cbor:"values" msgpack:"values"`
}

// Record is the serialized form of one tag value.
type Record struct {
	Tag   string `json:"tag" cbor:"tag" msgpack:"tag"`
	Type  string `json:"type" cbor:"type" msgpack:"type"`
	Value any    `json:"value,omitempty" cbor:"value,omitempty" msgpack:"value,omitempty"`
	Code  uint32 `json:"code,omitempty" cbor:"code,omitempty" msgpack:"code,omitempty"`
	Error string `json:"error,omitempty" cbor:"error,omitempty" msgpack:"error,omitempty"`
}

// TimerRecord is the serialized form of an IEC timer snapshot.
type TimerRecord struct {
	PTMs int64 `json:"pt_ms" cbor:"pt_ms" msgpack:"pt_ms"`
	ETMs int64 `json:"et_ms" cbor:"et_ms" msgpack:"et_ms"`
	IN   bool  `json:"in" cbor:"in" msgpack:"in"`
	Q    bool  `json:"q" cbor:"q" msgpack:"q"`
}

// StatusPlan is the status block destination.
type StatusPlan struct {
	DB         int
	Offset     int
	DeviceName string
}
