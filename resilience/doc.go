// Package resilience provides fault-tolerance primitives for outbound calls.
//
// This package includes:
//   - Retry: retries failed operations with exponential backoff
//   - Breaker: circuit breaker over sony/gobreaker, failing fast when open
//   - Bulkhead: caps concurrent calls to isolate failures
//   - RateLimiter: token-bucket throttling of outgoing work
//
// The primitives compose; a client typically layers the rate limiter and
// bulkhead inside a retrying loop with a shared breaker around the
// transport.
package resilience
