package notification

import "time"

// TimerHandle is a cancellable one-shot timer owned by the batcher. Stop
// reports whether the timer was cancelled before firing.
type TimerHandle interface {
	Stop() bool
}

// Scheduler hands out one-shot timers. The batcher never touches ambient
// timer state directly, so tests can drive flushes deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) TimerHandle
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) TimerHandle {
	return time.AfterFunc(d, f)
}

// NewScheduler returns a Scheduler backed by time.AfterFunc.
func NewScheduler() Scheduler {
	return realScheduler{}
}
