// internal/status/tracker.go
package status

// Tracker owns the device status state between poll cycles.
// It is not safe for concurrent use; one orchestrator goroutine owns it.
type Tracker struct {
	snap Snapshot
}

// NewTracker starts in the unknown (boot) state.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}

// Observe folds one poll outcome into the state.
// code is 0 for a successful cycle; stale marks a successful cycle in which
// some tag failed to decode. It reports whether anything changed.
func (t *Tracker) Observe(code uint32, stale bool) bool {
	changed := false

	if code == 0 && stale {
		if t.snap.Health != HealthStale {
			t.snap.Health = HealthStale
			changed = true
		}
		if t.snap.LastErrorCode != 0 {
			t.snap.LastErrorCode = 0
			changed = true
		}
		// seconds_in_error keeps counting while stale
		return changed
	}

	if code == 0 {
		// Recovery / OK
		if t.snap.Health != HealthOK {
			t.snap.Health = HealthOK
			changed = true
		}
		// Reset last error code when healthy.
		if t.snap.LastErrorCode != 0 {
			t.snap.LastErrorCode = 0
			changed = true
		}
		// Reset seconds-in-error on recovery.
		if t.snap.SecondsInError != 0 {
			t.snap.SecondsInError = 0
			changed = true
		}
		return changed
	}

	if t.snap.Health != HealthError {
		t.snap.Health = HealthError
		changed = true
	}
	if t.snap.LastErrorCode != code {
		t.snap.LastErrorCode = code
		changed = true
	}

	// NOTE: seconds_in_error increments on Tick only.
	return changed
}

// Tick advances seconds_in_error by one while not OK.
// HARD INVARIANT: seconds_in_error MUST NOT wrap.
func (t *Tracker) Tick() bool {
	if t.snap.Health == HealthOK {
		return false
	}
	if t.snap.SecondsInError == 0xFFFF {
		return false
	}
	t.snap.SecondsInError++
	return true
}
