// internal/config/normalize.go
package config

import "github.com/tamzrod/s7probe/internal/status"

// Defaults applied by Normalize.
const (
	DefaultTimeoutMs  = 1000
	DefaultIntervalMs = 1000
	DefaultFormat     = "text"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}
	p := &cfg.Probe

	if p.Source.TimeoutMs == 0 {
		p.Source.TimeoutMs = DefaultTimeoutMs
	}
	if p.Poll.IntervalMs == 0 {
		p.Poll.IntervalMs = DefaultIntervalMs
	}
	if p.Output.Format == "" {
		p.Output.Format = DefaultFormat
	}

	// ------------------------------------------------------------
	// DEVICE STATUS BLOCK NORMALIZATION (OPT-IN)
	// ------------------------------------------------------------

	if p.Status == nil {
		return
	}

	// Normalize device_name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(p.Status.DeviceName) > status.DeviceNameMaxChars {
		p.Status.DeviceName = p.Status.DeviceName[:status.DeviceNameMaxChars]
	}
}
