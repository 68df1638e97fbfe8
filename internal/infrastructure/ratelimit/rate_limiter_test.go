package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestLimiter() (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter()
	rl.now = clock.Now
	return rl, clock
}

func TestSendMessageBurstThenBlock(t *testing.T) {
	rl, _ := newTestLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := rl.Allow("10.0.0.1", ActionSendMessage)
		assert.True(t, allowed, "message %d", i+1)
	}

	allowed, wait := rl.Allow("10.0.0.1", ActionSendMessage)
	assert.False(t, allowed)
	assert.Equal(t, 6*time.Second, wait)
}

func TestRefillAfterInterval(t *testing.T) {
	rl, clock := newTestLimiter()

	for i := 0; i < 5; i++ {
		allowed, _ := rl.Allow("10.0.0.1", ActionCheckout)
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("10.0.0.1", ActionCheckout)
	assert.False(t, allowed)

	clock.Advance(4 * time.Second)
	allowed, wait := rl.Allow("10.0.0.1", ActionCheckout)
	assert.False(t, allowed)
	assert.Equal(t, 8*time.Second, wait)

	clock.Advance(8 * time.Second)
	allowed, _ = rl.Allow("10.0.0.1", ActionCheckout)
	assert.True(t, allowed)
}

func TestBucketsAreIsolatedByClientAndAction(t *testing.T) {
	rl, _ := newTestLimiter()

	for i := 0; i < 5; i++ {
		rl.Allow("10.0.0.1", ActionCheckout)
	}
	allowed, _ := rl.Allow("10.0.0.1", ActionCheckout)
	assert.False(t, allowed)

	allowed, _ = rl.Allow("10.0.0.2", ActionCheckout)
	assert.True(t, allowed)

	allowed, _ = rl.Allow("10.0.0.1", ActionSendMessage)
	assert.True(t, allowed)
}

func TestDefaultBucket(t *testing.T) {
	rl, _ := newTestLimiter()

	for i := 0; i < 20; i++ {
		allowed, _ := rl.Allow("10.0.0.1", "browse")
		assert.True(t, allowed)
	}
	allowed, _ := rl.Allow("10.0.0.1", "browse")
	assert.False(t, allowed)
}

func TestTokensNeverExceedMax(t *testing.T) {
	rl, clock := newTestLimiter()

	rl.Allow("10.0.0.1", ActionCheckout)
	clock.Advance(time.Hour)

	granted := 0
	for i := 0; i < 10; i++ {
		if allowed, _ := rl.Allow("10.0.0.1", ActionCheckout); allowed {
			granted++
		}
	}
	assert.Equal(t, 5, granted)
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	rl, clock := newTestLimiter()

	rl.Allow("10.0.0.1", ActionCheckout)
	clock.Advance(30 * time.Minute)
	rl.Allow("10.0.0.2", ActionCheckout)
	clock.Advance(45 * time.Minute)

	rl.Cleanup(time.Hour)

	rl.mutex.RLock()
	defer rl.mutex.RUnlock()
	assert.Len(t, rl.buckets, 1)
	assert.Contains(t, rl.buckets, "10.0.0.2:"+ActionCheckout)
}
