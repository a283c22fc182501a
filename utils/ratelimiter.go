package utils

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between successive calls to Wait.
// A zero interval never blocks.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	lastCall time.Time
}

// NewRateLimiter creates a RateLimiter with the given interval in milliseconds.
func NewRateLimiter(intervalMs int) *RateLimiter {
	return &RateLimiter{interval: time.Duration(intervalMs) * time.Millisecond}
}

// Wait blocks until the interval since the previous call has elapsed.
func (r *RateLimiter) Wait() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.interval > 0 && !r.lastCall.IsZero() {
		if elapsed := time.Since(r.lastCall); elapsed < r.interval {
			time.Sleep(r.interval - elapsed)
		}
	}
	r.lastCall = time.Now()
}
