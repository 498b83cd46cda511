// internal/writer/builder.go
package writer

import (
	"fmt"
	"io"
	"os"

	cfg "github.com/tamzrod/s7probe/internal/config"
)

// BuildStatusPlan converts the status config into a StatusPlan.
// Returns nil when status is disabled.
// Assumes config has already passed validation.
func BuildStatusPlan(c *cfg.Config) *StatusPlan {
	s := c.Probe.Status
	if s == nil {
		return nil
	}
	return &StatusPlan{
		DB:         s.DB,
		Offset:     s.Offset,
		DeviceName: s.DeviceName,
	}
}

// Build creates the output writer and its closer.
// An empty path writes to stdout.
func Build(c *cfg.Config) (Writer, func() error, error) {
	o := c.Probe.Output

	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if o.Path != "" {
		f, err := os.OpenFile(o.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("writer: open output: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	w, err := New(o.Format, out)
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}
	return w, closeFn, nil
}
