package timer

import (
	"testing"
	"time"
)

func TestManual_FireRunsCallback(t *testing.T) {
	m := NewManual()
	ran := false
	m.AfterFunc(2*time.Second, func() { ran = true })

	if m.Pending() != 1 {
		t.Fatalf("Pending = %d, want 1", m.Pending())
	}
	m.Fire()
	if !ran {
		t.Error("callback did not run")
	}
	if m.Pending() != 0 {
		t.Errorf("Pending = %d after fire, want 0", m.Pending())
	}
}

func TestManual_CancelPreventsCallback(t *testing.T) {
	m := NewManual()
	ran := false
	cancel := m.AfterFunc(2*time.Second, func() { ran = true })

	if !cancel() {
		t.Error("cancel reported false for a pending callback")
	}
	m.Fire()
	if ran {
		t.Error("cancelled callback still ran")
	}
	if cancel() {
		t.Error("second cancel reported true")
	}
}

func TestManual_AdvanceRespectsDelay(t *testing.T) {
	m := NewManual()
	var fired []string
	m.AfterFunc(2*time.Second, func() { fired = append(fired, "short") })
	m.AfterFunc(3*time.Second, func() { fired = append(fired, "long") })

	m.Advance(2 * time.Second)
	if len(fired) != 1 || fired[0] != "short" {
		t.Errorf("fired = %v, want [short]", fired)
	}

	m.Advance(3 * time.Second)
	if len(fired) != 2 {
		t.Errorf("fired = %v, want both", fired)
	}
}

func TestClock_CancelBeforeFire(t *testing.T) {
	var c Clock
	cancel := c.AfterFunc(time.Hour, func() { t.Error("should not fire") })
	if !cancel() {
		t.Error("cancel reported false for a pending timer")
	}
}
