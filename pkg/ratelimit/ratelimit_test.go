package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterBurstThenBlock(t *testing.T) {
	limiter := NewMemoryLimiter(&Config{
		RequestsPerMinute: 60,
		BurstSize:         3,
		Enabled:           true,
	})

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed, "request %d within the burst should pass", i)
	}

	allowed, wait := limiter.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Greater(t, wait.Nanoseconds(), int64(0))
}

func TestMemoryLimiterClientsAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(&Config{
		RequestsPerMinute: 60,
		BurstSize:         1,
		Enabled:           true,
	})

	allowed, _ := limiter.Allow("10.0.0.1")
	assert.True(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.1")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2")
	assert.True(t, allowed, "a second client has its own bucket")
}

func TestMemoryLimiterDisabled(t *testing.T) {
	limiter := NewMemoryLimiter(&Config{Enabled: false})

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1")
		assert.True(t, allowed)
	}
}
