package requests

import (
	"context"
	"lolookup/pkg/config"
	"sync"
	"time"
)

// Single riot rate limiting.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// Full riot rate limit, containing all the constraints.
type RateLimiter struct {
	windows []*RiotLimit
	mu      sync.Mutex
}

// NewRateLimiter creates a limiter from the configured short and long windows.
func NewRateLimiter(cfg config.RiotConfiguration) *RateLimiter {
	return NewRateLimiterWithWindows(cfg.Short, cfg.Long)
}

// NewRateLimiterWithWindows creates a limiter enforcing every window at once.
func NewRateLimiterWithWindows(windows ...config.RateLimitWindow) *RateLimiter {
	now := time.Now()
	limits := make([]*RiotLimit, 0, len(windows))
	for _, w := range windows {
		limits = append(limits, &RiotLimit{
			limit:         w.Count,
			resetInterval: w.ResetInterval,
			lastReset:     now,
		})
	}
	return &RateLimiter{windows: limits}
}

// Reset the count.
func (r *RateLimiter) resetCounts(now time.Time) {
	// Loop through each window and verify if can reset.
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if the window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// tryAcquire takes a slot when every window allows it.
// Otherwise returns how long until the slowest full window resets.
func (r *RateLimiter) tryAcquire() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.resetCounts(now)

	if r.checkLimits() {
		r.incrementCounts()
		return true, 0
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}
		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	if waitTime < time.Millisecond {
		waitTime = time.Millisecond
	}
	return false, waitTime
}

// Wait blocks until a request can be sent or the context is done.
// A nil limiter never blocks.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if r == nil {
		return ctx.Err()
	}

	for {
		ok, waitTime := r.tryAcquire()
		if ok {
			return nil
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
