package retry

import (
	"context"
	"time"
)

// DefaultBaseDelay is the backoff unit: attempt n (zero-indexed) waits
// 2^n * DefaultBaseDelay before the next try.
const DefaultBaseDelay = time.Second

// Sleeper parks the calling goroutine for d or until ctx is cancelled. Tests
// substitute a fake so retries run instantly.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewSleeper returns a Sleeper backed by a real timer.
func NewSleeper() Sleeper {
	return timerSleeper{}
}

// Do runs op up to maxRetries times. On failure of the last attempt the error
// propagates to the caller unchanged; earlier failures wait
// 2^attempt * baseDelay before retrying. Attempts are strictly sequential and
// every error kind is retried identically; Do does not interpret the error.
//
// Do has no cancellation hook of its own beyond ctx: once started it runs to
// success, exhaustion, or a context cancellation observed during a delay.
func Do(ctx context.Context, maxRetries int, baseDelay time.Duration, sleeper Sleeper, op func(ctx context.Context) error) error {
	if maxRetries < 1 {
		maxRetries = 1
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}

	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if attempt == maxRetries-1 {
			break
		}
		delay := baseDelay << uint(attempt)
		if sleepErr := sleeper.Sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}
