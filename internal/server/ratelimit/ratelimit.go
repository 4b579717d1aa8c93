// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests with tokens refilling at a steady
// rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Config controls the limiter. Ranking runs are CPU-bound, so the default
// limits are per client IP and deliberately modest.
type Config struct {
	Enabled bool
	Limit   int           // Requests per window
	Window  time.Duration // Refill window
	Burst   int           // Burst capacity
}

// DefaultConfig returns the standard limiter configuration: 60 requests per
// minute per client with a burst of 10.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
		Burst:   10,
	}
}

// Limiter tracks a token bucket per client identifier.
type Limiter struct {
	cfg     Config
	buckets map[string]*tokenBucket
	mu      sync.Mutex
}

// NewLimiter creates a limiter from the given configuration.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.Limit
	}
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*tokenBucket),
	}
}

// Allow reports whether the client identified by clientID may proceed.
func (l *Limiter) Allow(clientID string) bool {
	if !l.cfg.Enabled {
		return true
	}

	l.mu.Lock()
	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.cfg.Limit) / l.cfg.Window.Seconds()
		bucket = newTokenBucket(l.cfg.Burst, refillRate)
		l.buckets[clientID] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}
