// internal/writer/status_writer_test.go
package writer

import (
	"context"
	"errors"
	"testing"

	"github.com/tamzrod/s7probe/internal/batch"
	"github.com/tamzrod/s7probe/internal/codec"
	"github.com/tamzrod/s7probe/internal/s7"
	"github.com/tamzrod/s7probe/internal/status"
)

// ---- fake transport ----

type writtenItem struct {
	db     int
	offset int
	data   []byte
}

type fakeTransport struct {
	writes []writtenItem // last transaction
	fail   error
	code   s7.Code
}

func (f *fakeTransport) ReadMultiVars(context.Context, []batch.Item) error {
	return errors.New("write only")
}

func (f *fakeTransport) WriteMultiVars(_ context.Context, items []batch.Item) error {
	if f.fail != nil {
		return f.fail
	}
	f.writes = f.writes[:0]
	for i := range items {
		f.writes = append(f.writes, writtenItem{
			db:     items[i].DBNumber,
			offset: items[i].ByteOffset(),
			data:   append([]byte(nil), items[i].Data()...),
		})
		items[i].Result = f.code
	}
	return nil
}

func newStatusWriter(t *testing.T, tr *fakeTransport) *deviceStatusWriter {
	t.Helper()
	sw, enabled := NewDeviceStatusWriter(&StatusPlan{DB: 100, Offset: 10, DeviceName: "DEV-01"}, tr)
	if !enabled {
		t.Fatalf("status writer should be enabled")
	}
	return sw
}

// ---- tests ----

func TestStatusWriterDisabled(t *testing.T) {
	if _, enabled := NewDeviceStatusWriter(nil, &fakeTransport{}); enabled {
		t.Fatalf("nil plan must disable status")
	}
}

func TestDeviceNameWrittenOnFullAssertOnly(t *testing.T) {
	tr := &fakeTransport{}
	sw := newStatusWriter(t, tr)

	// ---- first write: FULL ASSERT ----
	first := status.Snapshot{Health: status.HealthOK}
	if err := sw.WriteStatus(context.Background(), first); err != nil {
		t.Fatalf("initial full assert failed: %v", err)
	}

	if len(tr.writes) != 1 || len(tr.writes[0].data) != status.BlockSize {
		t.Fatalf("expected one full block item, got %+v", tr.writes)
	}
	if tr.writes[0].db != 100 || tr.writes[0].offset != 10 {
		t.Fatalf("full block at db=%d offset=%d", tr.writes[0].db, tr.writes[0].offset)
	}

	name, err := codec.GetString(tr.writes[0].data, status.OffsetDeviceName)
	if err != nil || name != "DEV-01" {
		t.Fatalf("device name: got %q err=%v", name, err)
	}

	// ---- second write: INCREMENTAL ONLY ----
	second := status.Snapshot{
		Health:         status.HealthError,
		LastErrorCode:  uint32(s7.ErrCliAddressOutOfRange),
		SecondsInError: 1,
	}
	if err := sw.WriteStatus(context.Background(), second); err != nil {
		t.Fatalf("incremental write failed: %v", err)
	}

	if len(tr.writes) != 3 {
		t.Fatalf("expected 3 field items, got %d", len(tr.writes))
	}
	for _, w := range tr.writes {
		if len(w.data) == status.BlockSize {
			t.Fatalf("device name should not be rewritten on incremental update")
		}
	}
	code, _ := codec.GetDWord(tr.writes[1].data, 0)
	if tr.writes[1].offset != 10+status.OffsetLastErrorCode || code != uint32(s7.ErrCliAddressOutOfRange) {
		t.Fatalf("last error item: %+v", tr.writes[1])
	}
}

func TestSecondsInErrorResetOnRecovery(t *testing.T) {
	tr := &fakeTransport{}
	sw := newStatusWriter(t, tr)

	// simulate ERROR
	errSnap := status.Snapshot{Health: status.HealthError, LastErrorCode: 42, SecondsInError: 3}
	if err := sw.WriteStatus(context.Background(), errSnap); err != nil {
		t.Fatalf("error snapshot write failed: %v", err)
	}

	// simulate partial recovery: only seconds differ
	okSnap := status.Snapshot{Health: status.HealthError, LastErrorCode: 42, SecondsInError: 0}
	if err := sw.WriteStatus(context.Background(), okSnap); err != nil {
		t.Fatalf("recovery snapshot write failed: %v", err)
	}

	if len(tr.writes) != 1 {
		t.Fatalf("expected 1 item, got %d", len(tr.writes))
	}
	w := tr.writes[0]
	if w.offset != 10+status.OffsetSecondsInError || len(w.data) != 2 {
		t.Fatalf("unexpected write: %+v", w)
	}
	if w.data[0] != 0 || w.data[1] != 0 {
		t.Fatalf("seconds_in_error not reset: %v", w.data)
	}
}

func TestUnchangedSnapshotWritesNothing(t *testing.T) {
	tr := &fakeTransport{}
	sw := newStatusWriter(t, tr)

	s := status.Snapshot{Health: status.HealthOK}
	_ = sw.WriteStatus(context.Background(), s)
	tr.writes = nil

	if err := sw.WriteStatus(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.writes) != 0 {
		t.Fatalf("expected no writes, got %d", len(tr.writes))
	}
}

func TestFailureForcesFullReassert(t *testing.T) {
	tr := &fakeTransport{}
	sw := newStatusWriter(t, tr)

	_ = sw.WriteStatus(context.Background(), status.Snapshot{Health: status.HealthOK})

	// item-level refusal
	tr.code = s7.ErrCliAddressOutOfRange
	if err := sw.WriteStatus(context.Background(), status.Snapshot{Health: status.HealthError}); err == nil {
		t.Fatalf("expected error on refused item")
	}

	// transaction failure
	tr.code = 0
	tr.fail = errors.New("link down")
	if err := sw.WriteStatus(context.Background(), status.Snapshot{Health: status.HealthError}); err == nil {
		t.Fatalf("expected error on failed transaction")
	}

	tr.fail = nil
	if err := sw.WriteStatus(context.Background(), status.Snapshot{Health: status.HealthError}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.writes) != 1 || len(tr.writes[0].data) != status.BlockSize {
		t.Fatalf("expected full re-assert after failure, got %+v", tr.writes)
	}
}
