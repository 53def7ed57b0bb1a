package security

import (
	"sync"
	"time"
)

const (
	// DefaultMaxAttempts / DefaultWindow are the login brute-force limits.
	DefaultMaxAttempts = 5
	DefaultWindow      = 60 * time.Second
)

// RateLimiter is a sliding-window attempt counter keyed by an arbitrary
// string (e.g. "login:<email>"). State is in-memory only and does not survive
// a process restart; that is a deliberate scope boundary.
//
// Construct once per process and pass by reference to consumers.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewRateLimiter returns a limiter using the given clock; nil means
// time.Now. The clock seam exists for tests.
func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{attempts: make(map[string][]time.Time), now: now}
}

// Allow records an attempt for key and reports whether it is within the
// limit: at most maxAttempts attempts inside the trailing window. A rejected
// call is not recorded.
func (r *RateLimiter) Allow(key string, maxAttempts int, window time.Duration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()

	kept := r.attempts[key][:0]
	for _, t := range r.attempts[key] {
		if now.Sub(t) < window {
			kept = append(kept, t)
		}
	}
	r.attempts[key] = kept

	if len(kept) >= maxAttempts {
		return false
	}
	r.attempts[key] = append(kept, now)
	return true
}
