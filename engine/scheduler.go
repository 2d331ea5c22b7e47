package engine

import "time"

// CancelFunc revokes a scheduled callback; calling it after the
// callback has started is harmless
type CancelFunc func()

// Scheduler defers a callback by a duration. The player keeps at most
// one callback pending at a time and cancels it before any state
// mutation, so implementations never see overlapping ticks
type Scheduler interface {
	Schedule(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler schedules on the runtime timer heap. This is the
// production scheduler; tests use ManualScheduler instead
type TimerScheduler struct{}

func (TimerScheduler) Schedule(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
