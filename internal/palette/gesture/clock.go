package gesture

import "time"

// Timer is a cancellable single-shot timer.
type Timer interface {
	// Stop cancels the timer. Returns false if it already fired.
	Stop() bool
}

// Clock schedules single-shot timers. The wall clock is the production
// implementation; tests substitute a manual clock.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// wallClock schedules on the runtime timer wheel.
type wallClock struct{}

type wallTimer struct {
	t *time.Timer
}

func (w wallTimer) Stop() bool {
	return w.t.Stop()
}

func (wallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return wallTimer{t: time.AfterFunc(d, fn)}
}

// WallClock returns the real-time clock.
func WallClock() Clock {
	return wallClock{}
}
