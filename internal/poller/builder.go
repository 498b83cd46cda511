// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/s7probe/internal/batch"
	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/config"
	tmodbus "github.com/tamzrod/s7probe/internal/transport/modbus"
)

// Build constructs a Poller and wires transport lifecycle.
// Connection is reused while healthy.
// On transport death, Poller discards the transport and uses the factory on a future tick.
// No retries, no loops, no semantics.
func Build(c *config.Config, log *zap.Logger) (*Poller, func() error, error) {
	p := c.Probe

	// transport factory: ONE attempt per call
	factory := func() (batch.Transport, error) {
		c, err := DialSource(p.Source)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	// initial transport (fail fast at startup)
	tr, err := factory()
	if err != nil {
		return nil, nil, err
	}

	tags, err := TagSpecs(p.Tags)
	if err != nil {
		return nil, nil, err
	}

	pl, err := New(
		Config{
			Interval: time.Duration(p.Poll.IntervalMs) * time.Millisecond,
			Tags:     tags,
			OnChange: p.Output.OnChange,
		},
		tr,
		factory,
		WithLogger(log),
	)
	if err != nil {
		return nil, nil, err
	}

	return pl, pl.Close, nil
}

// DialSource connects a Modbus transport for the configured source.
func DialSource(src config.SourceConfig) (*tmodbus.Client, error) {
	return tmodbus.Dial(tmodbus.Config{
		Endpoint: src.Endpoint,
		UnitID:   src.UnitID,
		Timeout:  time.Duration(src.TimeoutMs) * time.Millisecond,
		Map: tmodbus.MemoryMap{
			DB: src.MemoryMap.DB,
			MK: src.MemoryMap.MK,
			PA: src.MemoryMap.PA,
			PE: src.MemoryMap.PE,
		},
	})
}

// TagSpecs resolves validated tag config into read geometry.
func TagSpecs(tags []config.TagConfig) ([]TagSpec, error) {
	out := make([]TagSpec, 0, len(tags))
	for _, t := range tags {
		area, err := config.ParseArea(t.Area)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		typ, declared, err := codec.ParseType(t.Type)
		if err != nil {
			return nil, fmt.Errorf("tag %q: %w", t.Name, err)
		}
		out = append(out, TagSpec{
			Name:     t.Name,
			Area:     area,
			DB:       t.DB,
			Offset:   t.Offset,
			Bit:      t.Bit,
			Type:     typ,
			Declared: declared,
		})
	}
	return out, nil
}
