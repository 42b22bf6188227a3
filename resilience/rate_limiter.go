package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned when a non-blocking acquisition is denied.
var ErrRateLimited = errors.New("rate limit exceeded")

// RateLimiterConfig configures a token-bucket rate limiter.
type RateLimiterConfig struct {
	// Name identifies this limiter for logging.
	Name string
	// Rate is the sustained number of acquisitions allowed per second.
	Rate float64
	// Burst is the bucket capacity. Defaults to Rate.
	Burst int
}

// RateLimiter throttles acquisitions with a token bucket. Tokens refill
// continuously at the configured rate up to the burst capacity.
type RateLimiter struct {
	config RateLimiterConfig

	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter from config.
func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	if cfg.Rate <= 0 {
		cfg.Rate = 10.0
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.Rate)
	}
	return &RateLimiter{
		config:     cfg,
		tokens:     float64(cfg.Burst),
		lastRefill: time.Now(),
	}
}

// Allow consumes one token if available, without blocking.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available or the context is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.Allow() {
		return nil
	}

	wait := rl.reserve()
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the current number of available tokens.
func (rl *RateLimiter) Tokens() float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.refill()
	return rl.tokens
}

// refill credits tokens for the time elapsed since the last refill.
// Callers must hold the mutex.
func (rl *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(rl.lastRefill).Seconds()
	rl.lastRefill = now

	rl.tokens += elapsed * rl.config.Rate
	if rl.tokens > float64(rl.config.Burst) {
		rl.tokens = float64(rl.config.Burst)
	}
}

// reserve debits one token, going negative if needed, and returns how long
// the caller must wait for the debt to be repaid.
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.refill()
	if rl.tokens >= 1 {
		rl.tokens--
		return 0
	}

	needed := 1 - rl.tokens
	rl.tokens--
	return time.Duration(needed / rl.config.Rate * float64(time.Second))
}
