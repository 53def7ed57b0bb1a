package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(func() time.Time { return now })

	assert.True(t, rl.Allow("k", 2, time.Second))
	assert.True(t, rl.Allow("k", 2, time.Second))
	assert.False(t, rl.Allow("k", 2, time.Second))
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(func() time.Time { return now })

	assert.True(t, rl.Allow("k", 2, time.Second))
	assert.True(t, rl.Allow("k", 2, time.Second))
	assert.False(t, rl.Allow("k", 2, time.Second))

	now = now.Add(1100 * time.Millisecond)
	assert.True(t, rl.Allow("k", 2, time.Second), "attempts outside the window must be forgotten")
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(nil)

	assert.True(t, rl.Allow("login:a@b.c", 1, time.Minute))
	assert.False(t, rl.Allow("login:a@b.c", 1, time.Minute))
	assert.True(t, rl.Allow("login:x@y.z", 1, time.Minute))
}

func TestRateLimiter_RejectedAttemptNotRecorded(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rl := NewRateLimiter(func() time.Time { return now })

	assert.True(t, rl.Allow("k", 1, time.Second))
	assert.False(t, rl.Allow("k", 1, time.Second))

	// only the accepted attempt ages out; the rejection added nothing
	now = now.Add(1100 * time.Millisecond)
	assert.True(t, rl.Allow("k", 1, time.Second))
}
