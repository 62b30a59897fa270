package ratelimit

import (
	"math"

	"clinic-dispatch/pkg/clock"
)

// TokenBucket is a continuous-refill rate limiter. Tokens accumulate at
// refillRate tokens per second up to capacity; the refill is computed lazily
// from elapsed time on every call, there is no background timer.
//
// A bucket belongs to a single protected resource and assumes a single-writer
// discipline; concurrent unsynchronized access is the caller's problem.
type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill int64 // unix nanos of the last refill
	clk        clock.Clock
}

// NewTokenBucket creates a full bucket. refillRate is tokens per second.
func NewTokenBucket(capacity int, refillRate float64, clk clock.Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: clk.Now().UnixNano(),
		clk:        clk,
	}
}

// refill credits tokens for the time elapsed since the last refill, capped at
// capacity. Tokens never exceed capacity and never go negative.
func (b *TokenBucket) refill() {
	now := b.clk.Now().UnixNano()
	elapsed := float64(now-b.lastRefill) / 1e9
	if elapsed > 0 {
		b.tokens = math.Min(b.capacity, b.tokens+elapsed*b.refillRate)
	}
	b.lastRefill = now
}

// Consume refills, then takes amount tokens if enough are available. A denied
// consume has no side effects; there is no partial consumption. Denial is a
// decision value, not an error, so callers can choose to queue or reject.
func (b *TokenBucket) Consume(amount int) bool {
	b.refill()
	cost := float64(amount)
	if b.tokens < cost {
		return false
	}
	b.tokens -= cost
	return true
}

// AvailableTokens refills and returns the whole tokens currently held, for
// observability.
func (b *TokenBucket) AvailableTokens() int {
	b.refill()
	return int(math.Floor(b.tokens))
}
