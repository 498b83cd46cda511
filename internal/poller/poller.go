// internal/poller/poller.go
package poller

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/tamzrod/s7probe/internal/batch"
	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/s7"
	"github.com/tamzrod/s7probe/internal/timer"
)

// Factory opens a new transport. ONE attempt per call.
type Factory func() (batch.Transport, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
	Tags     []TagSpec

	// OnChange drops tags whose bytes and result code did not change
	// since the previous cycle.
	OnChange bool
}

// Poller is a clock-driven tag reader.
// Tags are read in batches of at most s7.MaxVars items.
type Poller struct {
	cfg     Config
	tr      batch.Transport
	factory Factory
	log     *zap.Logger

	seen map[string]uint64 // tag name -> fingerprint of last report
}

// Option configures a Poller.
type Option func(*Poller)

// WithLogger sets the logger. Default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a poller with immutable config.
// tr may be nil when factory is set; the first cycle connects.
func New(cfg Config, tr batch.Transport, factory Factory, opts ...Option) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Tags) == 0 {
		return nil, errors.New("poller: at least one tag required")
	}
	if tr == nil && factory == nil {
		return nil, errors.New("poller: transport or factory required")
	}
	for _, t := range cfg.Tags {
		if t.Size() <= 0 {
			return nil, fmt.Errorf("poller: tag %q has no size", t.Name)
		}
	}

	p := &Poller{
		cfg:     cfg,
		tr:      tr,
		factory: factory,
		log:     zap.NewNop(),
		seen:    make(map[string]uint64, len(cfg.Tags)),
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a failed transaction aborts the cycle and drops the
// transport so the next cycle reconnects.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{At: time.Now()}

	if err := p.connect(); err != nil {
		res.Err = err
		res.RawErrorCode = errorCode(err)
		return res
	}

	values := make([]TagValue, 0, len(p.cfg.Tags))

	for start := 0; start < len(p.cfg.Tags); start += s7.MaxVars {
		end := min(start+s7.MaxVars, len(p.cfg.Tags))

		chunk, err := p.readChunk(ctx, p.cfg.Tags[start:end])
		if err != nil {
			p.drop(err)
			res.Err = err
			res.RawErrorCode = errorCode(err)
			return res
		}
		values = append(values, chunk...)
	}

	// Commit only if all transactions succeeded
	for _, v := range values {
		if v.Code != 0 && res.RawErrorCode == 0 {
			res.RawErrorCode = uint32(v.Code)
		}
	}
	res.Values = p.filter(values)
	return res
}

func (p *Poller) readChunk(ctx context.Context, tags []TagSpec) ([]TagValue, error) {
	b := batch.New(p.tr)
	bufs := make([][]byte, len(tags))

	for i, t := range tags {
		if t.Type == codec.Bool {
			bufs[i] = make([]byte, 1)
			if !b.Add(t.Area, s7.WLBit, t.DB, t.Offset*8+t.Bit, 1, bufs[i], 0) {
				return nil, fmt.Errorf("poller: tag %q rejected by batch", t.Name)
			}
			continue
		}

		bufs[i] = make([]byte, t.Size())
		if !b.Add(t.Area, s7.WLByte, t.DB, t.Offset, t.Size(), bufs[i], 0) {
			return nil, fmt.Errorf("poller: tag %q rejected by batch", t.Name)
		}
	}

	codes, err := b.Read(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TagValue, len(tags))
	for i, t := range tags {
		out[i] = decode(t, bufs[i], codes[i])
	}
	return out, nil
}

func decode(t TagSpec, raw []byte, code s7.Code) TagValue {
	v := TagValue{Name: t.Name, Type: t.Type, Raw: raw, Code: code}
	if code != 0 {
		v.Raw = nil
		return v
	}

	switch t.Type {
	case codec.Bool:
		// bit items arrive as a 0/1 byte
		v.Value = raw[0]&1 != 0
	case codec.IECTimer:
		v.Value = timer.Parse(raw)
	default:
		v.Value, v.Err = codec.Decode(raw, t.Type, 0, t.Bit, t.Declared)
	}
	return v
}

// ---- report by exception ----

func (p *Poller) filter(values []TagValue) []TagValue {
	if !p.cfg.OnChange {
		return values
	}

	out := values[:0]
	for _, v := range values {
		fp := fingerprint(v)
		if prev, ok := p.seen[v.Name]; ok && prev == fp {
			continue
		}
		p.seen[v.Name] = fp
		out = append(out, v)
	}
	return out
}

func fingerprint(v TagValue) uint64 {
	var code [4]byte
	binary.BigEndian.PutUint32(code[:], uint32(v.Code))

	d := xxhash.New()
	_, _ = d.Write(code[:])
	_, _ = d.Write(v.Raw)
	return d.Sum64()
}

// ---- transport lifecycle ----

func (p *Poller) connect() error {
	if p.tr != nil {
		return nil
	}
	if p.factory == nil {
		return s7.ErrTCPNotConnected
	}

	tr, err := p.factory()
	if err != nil {
		return fmt.Errorf("%w: %w", s7.ErrTCPConnectionFailed, err)
	}
	p.log.Info("transport connected")
	p.tr = tr
	return nil
}

// drop discards the transport after a failed transaction.
// Without a factory the transport is kept; there is nothing to replace it with.
func (p *Poller) drop(cause error) {
	if p.factory == nil || p.tr == nil {
		return
	}
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		return
	}

	p.log.Warn("transport dropped", zap.Error(cause))
	if c, ok := p.tr.(io.Closer); ok {
		_ = c.Close()
	}
	p.tr = nil
}

// Close releases the current transport, if any.
func (p *Poller) Close() error {
	if c, ok := p.tr.(io.Closer); ok {
		p.tr = nil
		return c.Close()
	}
	p.tr = nil
	return nil
}

// ---- helpers ----

// errorCode extracts a numeric result code from err. Unknown errors map to
// s7.ErrCliFunctionRefused so a failed cycle never reports 0.
func errorCode(err error) uint32 {
	if err == nil {
		return 0
	}

	var c interface{ ErrorCode() uint32 }
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return uint32(s7.ErrCliFunctionRefused)
}
