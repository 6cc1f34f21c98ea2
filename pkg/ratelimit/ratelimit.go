package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides whether a client's request may proceed. The duration
// reports how long to wait when the answer is no.
type Limiter interface {
	Allow(clientID string) (bool, time.Duration)
}

type Config struct {
	RequestsPerMinute int
	BurstSize         int
	Enabled           bool
}

func DefaultConfig() *Config {
	return &Config{
		RequestsPerMinute: 120,
		BurstSize:         30,
		Enabled:           true,
	}
}

// MemoryLimiter is a token-bucket limiter with one bucket per client,
// kept in process memory.
type MemoryLimiter struct {
	config  *Config
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

func NewMemoryLimiter(config *Config) *MemoryLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	limiter := &MemoryLimiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
	go limiter.evictIdleBuckets()

	return limiter
}

func (l *MemoryLimiter) Allow(clientID string) (bool, time.Duration) {
	if !l.config.Enabled {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.config.BurstSize), lastRefill: now}
		l.buckets[clientID] = b
	}

	refill := now.Sub(b.lastRefill).Minutes() * float64(l.config.RequestsPerMinute)
	b.tokens = min(float64(l.config.BurstSize), b.tokens+refill)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}

	deficit := 1 - b.tokens
	wait := time.Duration(deficit / float64(l.config.RequestsPerMinute) * float64(time.Minute))
	return false, wait
}

// evictIdleBuckets drops buckets that have been idle long enough to be
// full again, bounding memory over many distinct clients.
func (l *MemoryLimiter) evictIdleBuckets() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		l.mu.Lock()
		for id, b := range l.buckets {
			if b.lastRefill.Before(cutoff) {
				delete(l.buckets, id)
			}
		}
		l.mu.Unlock()
	}
}
