// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/s7"
	"github.com/tamzrod/s7probe/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	p := &cfg.Probe

	// ------------------------------------------------------------
	// SOURCE / POLL / OUTPUT
	// ------------------------------------------------------------

	if p.Source.Endpoint == "" {
		return errors.New("source: endpoint is required")
	}
	if p.Source.TimeoutMs < 0 {
		return fmt.Errorf("source: timeout_ms must be >= 0 (got %d)", p.Source.TimeoutMs)
	}
	if p.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0 (got %d)", p.Poll.IntervalMs)
	}

	switch p.Output.Format {
	case "", "text", "json", "cbor", "msgpack":
	default:
		return fmt.Errorf("output: unknown format %q", p.Output.Format)
	}

	// ------------------------------------------------------------
	// TAGS
	// ------------------------------------------------------------

	type span struct {
		start int
		end   int // inclusive
		tag   string
	}

	if len(p.Tags) == 0 {
		return errors.New("tags: at least one tag is required")
	}

	names := make(map[string]struct{}, len(p.Tags))
	// key = data block number, DB area only
	spans := make(map[int][]span)

	for i, t := range p.Tags {
		if t.Name == "" {
			return fmt.Errorf("tag #%d: name is required", i)
		}
		if _, dup := names[t.Name]; dup {
			return fmt.Errorf("tag %q: duplicate name", t.Name)
		}
		names[t.Name] = struct{}{}

		area, err := ParseArea(t.Area)
		if err != nil {
			return fmt.Errorf("tag %q: %w", t.Name, err)
		}
		if area == s7.AreaDB && t.DB <= 0 {
			return fmt.Errorf("tag %q: db must be > 0", t.Name)
		}
		if !p.Source.MemoryMap.mapped(area, t.DB) {
			return fmt.Errorf("tag %q: area %s db=%d is not in memory_map", t.Name, area, t.DB)
		}

		typ, declared, err := codec.ParseType(t.Type)
		if err != nil {
			return fmt.Errorf("tag %q: %w", t.Name, err)
		}
		if t.Offset < 0 {
			return fmt.Errorf("tag %q: offset must be >= 0", t.Name)
		}
		if t.Bit < 0 || t.Bit > 7 {
			return fmt.Errorf("tag %q: bit must be 0-7 (got %d)", t.Name, t.Bit)
		}
		if t.Bit != 0 && typ != codec.Bool {
			return fmt.Errorf("tag %q: bit is only valid for bool tags", t.Name)
		}

		if area == s7.AreaDB {
			spans[t.DB] = append(spans[t.DB], span{
				start: t.Offset,
				end:   t.Offset + codec.Size(typ, declared) - 1,
				tag:   t.Name,
			})
		}
	}

	// ------------------------------------------------------------
	// DEVICE STATUS BLOCK VALIDATION (OPT-IN)
	// ------------------------------------------------------------

	s := p.Status
	if s == nil {
		return nil
	}

	// device_name sanity (ASCII only)
	for i := 0; i < len(s.DeviceName); i++ {
		if s.DeviceName[i] > 0x7F {
			return errors.New("status: device_name must contain ASCII characters only")
		}
	}

	if s.DB <= 0 {
		return fmt.Errorf("status: db must be > 0 (got %d)", s.DB)
	}
	if s.Offset < 0 {
		return fmt.Errorf("status: offset must be >= 0 (got %d)", s.Offset)
	}
	if !p.Source.MemoryMap.mapped(s7.AreaDB, s.DB) {
		return fmt.Errorf("status: db=%d is not in memory_map", s.DB)
	}

	start := s.Offset
	end := s.Offset + status.BlockSize - 1

	for _, sp := range spans[s.DB] {
		// overlap check (inclusive)
		if !(end < sp.start || start > sp.end) {
			return fmt.Errorf(
				"status block overlap: db=%d range=%d-%d overlaps with tag=%q range=%d-%d",
				s.DB,
				start,
				end,
				sp.tag,
				sp.start,
				sp.end,
			)
		}
	}

	return nil
}
