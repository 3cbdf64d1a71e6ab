// Package timer provides the cancellable delayed-callback abstraction the
// session engine uses for auto-advance. The engine owns the returned
// cancel token; a real clock implementation runs the app and a manual one
// drives tests deterministically.
package timer

import (
	"sync"
	"time"
)

// CancelFunc stops a scheduled callback. Calling it after the callback
// fired, or more than once, is a no-op. It reports whether the callback
// was prevented from running.
type CancelFunc func() bool

// Scheduler schedules a single delayed callback.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// Clock is the wall-clock Scheduler.
type Clock struct{}

func (Clock) AfterFunc(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}

// Manual is a Scheduler stepped by hand. Scheduled callbacks fire only
// when Fire or Advance is called, which makes timer races reproducible
// in tests.
type Manual struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]manualEntry
}

type manualEntry struct {
	due time.Duration
	fn  func()
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{pending: make(map[int]manualEntry)}
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.pending[id] = manualEntry{due: d, fn: fn}

	return func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		if _, ok := m.pending[id]; !ok {
			return false
		}
		delete(m.pending, id)
		return true
	}
}

// Pending returns how many callbacks are scheduled and not yet fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Fire runs and removes every pending callback, regardless of delay.
func (m *Manual) Fire() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.pending))
	for id, e := range m.pending {
		fns = append(fns, e.fn)
		delete(m.pending, id)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Advance runs callbacks whose delay is within d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	var fns []func()
	for id, e := range m.pending {
		if e.due <= d {
			fns = append(fns, e.fn)
			delete(m.pending, id)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
