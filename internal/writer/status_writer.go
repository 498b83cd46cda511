// internal/writer/status_writer.go
package writer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/s7probe/internal/batch"
	"github.com/tamzrod/s7probe/internal/s7"
	"github.com/tamzrod/s7probe/internal/status"
)

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(ctx context.Context, s status.Snapshot) error
}

// deviceStatusWriter writes the status block into a data block through
// multi-item batch writes.
type deviceStatusWriter struct {
	plan *StatusPlan
	tr   batch.Transport

	needFull bool
	last     status.Snapshot
}

// NewDeviceStatusWriter builds a status writer if status is enabled.
// If plan is nil, status is disabled.
func NewDeviceStatusWriter(plan *StatusPlan, tr batch.Transport) (*deviceStatusWriter, bool) {
	if plan == nil {
		return nil, false
	}

	return &deviceStatusWriter{
		plan:     plan,
		tr:       tr,
		needFull: true, // full re-assert on first successful write
		last: status.Snapshot{
			Health: status.HealthUnknown,
		},
	}, true
}

// WriteStatus delivers a device status snapshot into status memory.
// On any write failure, the next successful call will re-assert the full block.
func (sw *deviceStatusWriter) WriteStatus(ctx context.Context, s status.Snapshot) error {
	if sw == nil || sw.plan == nil {
		return errors.New("status writer: disabled")
	}
	if sw.tr == nil {
		return errors.New("status writer: missing transport")
	}

	block := status.Encode(s, sw.plan.DeviceName)
	b := batch.New(sw.tr)

	// ------------------------------------------------------------
	// Full block write (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		if !b.Add(s7.AreaDB, s7.WLByte, sw.plan.DB, sw.plan.Offset, len(block), block, 0) {
			return errors.New("status writer: block rejected by batch")
		}

		codes, err := b.Write(ctx)
		if err == nil && codes[0] != 0 {
			err = codes[0]
		}
		if err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: changed fields only, one item each
	// ------------------------------------------------------------
	var queued []int
	for i, f := range status.Fields {
		if !fieldChanged(f, sw.last, s) {
			continue
		}
		if !b.Add(s7.AreaDB, s7.WLByte, sw.plan.DB, sw.plan.Offset+f.Offset, f.Size, block, f.Offset) {
			sw.needFull = true
			return fmt.Errorf("status writer: field @%d rejected by batch", f.Offset)
		}
		queued = append(queued, i)
	}
	if len(queued) == 0 {
		return nil
	}

	codes, err := b.Write(ctx)
	if err != nil {
		sw.needFull = true
		return fmt.Errorf("status writer: %w", err)
	}

	var errs []string
	for k, i := range queued {
		f := status.Fields[i]
		if codes[k] != 0 {
			errs = append(errs, fmt.Sprintf("field @%d write failed: %v", f.Offset, codes[k]))
			continue
		}
		sw.last = applyField(f, sw.last, s)
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next success.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func fieldChanged(f status.Field, a, b status.Snapshot) bool {
	switch f.Offset {
	case status.OffsetHealth:
		return a.Health != b.Health
	case status.OffsetLastErrorCode:
		return a.LastErrorCode != b.LastErrorCode
	case status.OffsetSecondsInError:
		return a.SecondsInError != b.SecondsInError
	}
	return false
}

func applyField(f status.Field, dst, src status.Snapshot) status.Snapshot {
	switch f.Offset {
	case status.OffsetHealth:
		dst.Health = src.Health
	case status.OffsetLastErrorCode:
		dst.LastErrorCode = src.LastErrorCode
	case status.OffsetSecondsInError:
		dst.SecondsInError = src.SecondsInError
	}
	return dst
}
