// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"
)

func reg(v uint16) *uint16 { return &v }

// helper to build a minimal valid config quickly
func probe(tags ...TagConfig) *Config {
	return &Config{
		Probe: ProbeConfig{
			Source: SourceConfig{
				Endpoint: "127.0.0.1:502",
				MemoryMap: MemoryMapConfig{
					DB: map[int]uint16{1: 0, 100: 1000},
					MK: reg(2000),
				},
			},
			Tags: tags,
		},
	}
}

func tag(name, area string, db int, typ string, offset int) TagConfig {
	return TagConfig{Name: name, Area: area, DB: db, Type: typ, Offset: offset}
}

// ---- tests ----

func TestValidate_Minimal(t *testing.T) {
	cfg := probe(tag("speed", "db", 1, "real", 0))

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"no endpoint", func(c *Config) { c.Probe.Source.Endpoint = "" }, "endpoint"},
		{"bad format", func(c *Config) { c.Probe.Output.Format = "xml" }, "format"},
		{"no tags", func(c *Config) { c.Probe.Tags = nil }, "at least one"},
		{"empty name", func(c *Config) { c.Probe.Tags[0].Name = "" }, "name is required"},
		{"duplicate", func(c *Config) {
			c.Probe.Tags = append(c.Probe.Tags, tag("speed", "mk", 0, "int", 0))
		}, "duplicate"},
		{"bad area", func(c *Config) { c.Probe.Tags[0].Area = "xx" }, "unknown area"},
		{"db zero", func(c *Config) { c.Probe.Tags[0].DB = 0 }, "db must be > 0"},
		{"unmapped db", func(c *Config) { c.Probe.Tags[0].DB = 7 }, "memory_map"},
		{"unmapped area", func(c *Config) { c.Probe.Tags[0].Area = "pe" }, "memory_map"},
		{"bad type", func(c *Config) { c.Probe.Tags[0].Type = "float" }, "float"},
		{"string no length", func(c *Config) { c.Probe.Tags[0].Type = "chars" }, "length"},
		{"bit range", func(c *Config) {
			c.Probe.Tags[0].Type = "bool"
			c.Probe.Tags[0].Bit = 8
		}, "bit must be"},
		{"bit on non-bool", func(c *Config) { c.Probe.Tags[0].Bit = 2 }, "only valid for bool"},
		{"negative offset", func(c *Config) { c.Probe.Tags[0].Offset = -1 }, "offset"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := probe(tag("speed", "db", 1, "real", 0))
			tc.mod(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidate_StatusTouchingTagAllowed(t *testing.T) {
	cfg := probe(tag("speed", "db", 100, "real", 40))    // 40-43
	cfg.Probe.Status = &StatusConfig{DB: 100, Offset: 6} // 6-39

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusOverlapDetected(t *testing.T) {
	cfg := probe(tag("label", "db", 100, "string[10]", 0)) // 0-11
	cfg.Probe.Status = &StatusConfig{DB: 100, Offset: 10}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected overlap error, got nil")
	}
}

func TestValidate_StatusOtherDBNoOverlap(t *testing.T) {
	cfg := probe(tag("label", "db", 1, "string[10]", 0))
	cfg.Probe.Status = &StatusConfig{DB: 100, Offset: 0}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusUnmappedDB(t *testing.T) {
	cfg := probe(tag("speed", "db", 1, "real", 0))
	cfg.Probe.Status = &StatusConfig{DB: 5}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for unmapped status db")
	}
}

func TestValidate_StatusDeviceNameASCII(t *testing.T) {
	cfg := probe(tag("speed", "db", 1, "real", 0))
	cfg.Probe.Status = &StatusConfig{DB: 100, DeviceName: "Prüfstand"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error")
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := probe(tag("speed", "db", 1, "real", 0))
	cfg.Probe.Status = &StatusConfig{DB: 100, DeviceName: strings.Repeat("X", 30)}

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Probe.Status.DeviceName) != 30 || cfg.Probe.Output.Format != "" {
		t.Fatalf("validate mutated config")
	}
}
