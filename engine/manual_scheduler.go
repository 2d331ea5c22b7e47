package engine

import (
	"sync"
	"time"
)

// ManualScheduler holds each scheduled callback until Step is called,
// giving tests and offline rendering full control over tick timing.
// Only the most recent Schedule call is pending; the player never has
// more than one in flight anyway
type ManualScheduler struct {
	mu      sync.Mutex
	pending *manualTick
	delays  []time.Duration
}

type manualTick struct {
	fn       func()
	canceled bool
}

func (s *ManualScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTick{fn: fn}
	s.pending = t
	s.delays = append(s.delays, d)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.canceled = true
		if s.pending == t {
			s.pending = nil
		}
	}
}

// Step runs the pending callback if there is one and it has not been
// canceled, and reports whether a callback ran so a drain loop can
// stop once playback goes quiet
func (s *ManualScheduler) Step() bool {
	s.mu.Lock()
	t := s.pending
	s.pending = nil
	s.mu.Unlock()
	if t == nil || t.canceled {
		return false
	}
	t.fn()
	return true
}

// Delays returns a copy of every interval scheduled so far, in order
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}
