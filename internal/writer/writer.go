// internal/writer/writer.go
package writer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tamzrod/s7probe/internal/poller"
)

// encoder writes one frame to the stream.
type encoder interface {
	Encode(v any) error
}

// streamWriter writes one self-delimiting frame per poll cycle.
type streamWriter struct {
	format string
	enc    encoder
}

func (w *streamWriter) Write(res poller.PollResult) error {
	if err := w.enc.Encode(NewFrame(res)); err != nil {
		return fmt.Errorf("writer %s: %w", w.format, err)
	}
	return nil
}

// New returns a Writer for format over out.
// Known formats: text, json, cbor, msgpack.
func New(format string, out io.Writer) (Writer, error) {
	switch format {
	case "text", "":
		return newTextWriter(out), nil
	case "json":
		return &streamWriter{format: format, enc: json.NewEncoder(out)}, nil
	case "cbor":
		em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
		if err != nil {
			return nil, err
		}
		return &streamWriter{format: format, enc: em.NewEncoder(out)}, nil
	case "msgpack":
		return &streamWriter{format: format, enc: msgpack.NewEncoder(out)}, nil
	default:
		return nil, fmt.Errorf("writer: unknown format %q", format)
	}
}
