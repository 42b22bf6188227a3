package apiclient

import (
	"errors"
	"time"

	"github.com/serhatcn/apikit/resilience"
)

// Retry defaults.
const (
	defaultRetryAttempts = 1
	defaultRetryBackoff  = 300 * time.Millisecond
)

// defaultRetryableStatuses are the status codes eligible for automatic
// retry unless a policy overrides them.
var defaultRetryableStatuses = []int{408, 429, 500, 502, 503, 504}

// RetryPolicy configures per-call retry behavior. The zero value retries
// nothing (one attempt).
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int `validate:"omitempty,gte=1"`
	// Backoff is the base delay; attempt n waits Backoff * 2^(n-1).
	// The delay is never capped — bound it via MaxAttempts.
	Backoff time.Duration
	// RetryableStatuses are the HTTP status codes eligible for retry.
	RetryableStatuses []int
}

// DefaultRetryPolicy returns the default single-attempt policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       defaultRetryAttempts,
		Backoff:           defaultRetryBackoff,
		RetryableStatuses: defaultRetryableStatuses,
	}
}

// ApplyDefaults fills in zero-value fields.
func (p *RetryPolicy) ApplyDefaults() {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultRetryAttempts
	}
	if p.Backoff <= 0 {
		p.Backoff = defaultRetryBackoff
	}
	if p.RetryableStatuses == nil {
		p.RetryableStatuses = defaultRetryableStatuses
	}
}

// RetryableStatus reports whether a status code is in the policy's set.
func (p RetryPolicy) RetryableStatus(status int) bool {
	for _, s := range p.RetryableStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// retryIf decides whether a failed attempt may be retried under the policy.
//
// HTTP outcome errors retry only when their status is in the policy's set.
// Transport and timeout failures retry; cancellations and construction
// errors never do. Untyped errors are treated as transport-level unless
// they are context cancellation.
func (p RetryPolicy) retryIf(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindHTTP:
			return p.RetryableStatus(e.StatusCode)
		case KindTransport, KindTimeout:
			return true
		default:
			return false
		}
	}
	return resilience.DefaultRetryIf(err)
}

// retryConfig translates the policy into the resilience engine's shape:
// exact exponential doubling, no jitter, no backoff cap.
func (p RetryPolicy) retryConfig() resilience.RetryConfig {
	return resilience.RetryConfig{
		MaxAttempts:    p.MaxAttempts,
		InitialBackoff: p.Backoff,
		BackoffFactor:  2.0,
		RetryIf:        p.retryIf,
	}
}
