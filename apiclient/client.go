package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/serhatcn/apikit/logger"
	"github.com/serhatcn/apikit/resilience"
)

// Client dispatches requests against a base origin resolved once at
// construction. Safe for concurrent use; the only mutable state is the
// bearer token.
type Client struct {
	config    Config
	origin    string
	transport Doer
	breaker   *resilience.Breaker
	limiter   *resilience.RateLimiter
	bulkhead  *resilience.Bulkhead
	log       *logger.Logger

	bearer bearerCell
}

// New creates a client. The base origin is resolved from the execution
// context and configured bases exactly once, here, and never re-evaluated.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		log:    cfg.Logger,
	}
	c.origin = resolveOrigin(cfg.Execution, cfg.BaseURL, cfg.PublicBaseURL, c.log)

	c.transport = cfg.Transport
	if c.transport == nil {
		c.transport = &http.Client{Transport: DefaultTransport()}
	}

	if cfg.Breaker != nil {
		c.breaker = resilience.NewBreaker(*cfg.Breaker)
	}
	if cfg.RateLimit != nil {
		c.limiter = resilience.NewRateLimiter(*cfg.RateLimit)
	}
	if cfg.Bulkhead != nil {
		c.bulkhead = resilience.NewBulkhead(*cfg.Bulkhead)
	}

	return c, nil
}

// Origin returns the resolved base origin. Empty means same-origin.
func (c *Client) Origin() string {
	return c.origin
}

// Do executes one call lifecycle: build URL and body once, then attempt the
// transport round trip under the per-attempt deadline, classifying the
// response and retrying per policy. The last failure is surfaced unchanged.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	// An already-cancelled call rejects before any transport work.
	if err := ctx.Err(); err != nil {
		return nil, NewCancelledError(err)
	}

	if req.Method == "" {
		req.Method = http.MethodGet
	}

	headers := c.mergeHeaders(ctx, req.Headers)

	urlStr, err := buildURL(c.origin, c.config.Execution, req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeBody(req.Method, req.Body, headers)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode body: %v", err))
	}

	policy := c.policyFor(req.Retry)
	timeout := c.timeoutFor(req.Timeout)

	ctx, span := startRequestSpan(ctx, req.Method, urlStr)
	defer span.End()
	start := time.Now()

	attempt := 0
	cfg := policy.retryConfig()
	cfg.OnRetry = func(n int, attemptErr error, backoff time.Duration) {
		c.log.Debug("retrying request", logger.Fields(
			"method", req.Method,
			"url", urlStr,
			"attempt", n,
			"backoff", backoff.String(),
			"error", attemptErr.Error(),
		))
	}

	resp, err := resilience.Retry(ctx, cfg, func() (*Response, error) {
		attempt++
		recordAttempt(span, attempt)
		return c.attempt(ctx, req, urlStr, headers, body, contentType, timeout)
	})
	if err != nil {
		// The engine surfaces raw context errors when cancellation lands
		// between attempts or during backoff.
		var typed *Error
		if !errors.As(err, &typed) && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			err = NewCancelledError(err)
		}
		finishRequest(ctx, span, req.Method, urlStr, attempt, start, 0, err)
		c.log.Warn("request failed", logger.Fields(
			"method", req.Method,
			"url", urlStr,
			"attempts", attempt,
			"error", err.Error(),
		))
		return nil, err
	}

	finishRequest(ctx, span, req.Method, urlStr, attempt, start, resp.StatusCode, nil)
	return resp, nil
}

// attempt performs one timeout-guarded round trip and classifies the result.
// The prebuilt URL, headers, and body bytes are reused verbatim on retries.
func (c *Client) attempt(ctx context.Context, req Request, urlStr string, headers map[string]string, body []byte, contentType string, timeout time.Duration) (*Response, error) {
	attemptCtx := ctx
	cancel := func() {}
	if timeout > 0 {
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	attemptCtx = withCacheHint(attemptCtx, req.Cache)
	if req.CacheOptions != nil && c.config.Execution.IsServer() {
		attemptCtx = withCacheOptions(attemptCtx, req.CacheOptions)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(attemptCtx); err != nil {
			return nil, c.classifyTransportError(ctx, attemptCtx, timeout, err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, urlStr, reader)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}
	if contentType != "" {
		// Multipart bodies get their boundary-bearing type here, below the
		// header merge, so caller-set values cannot clobber the boundary.
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := c.roundTrip(httpReq)
	if err != nil {
		return nil, c.classifyTransportError(ctx, attemptCtx, timeout, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classifyTransportError(ctx, attemptCtx, timeout, fmt.Errorf("read response body: %w", err))
	}

	r := newResponse(resp, raw)
	if !r.IsSuccess() {
		return nil, httpError(r)
	}

	// A 2xx response declaring JSON but carrying an undecodable body is a
	// transport-level failure: the payload read is one-shot and unusable.
	if r.Kind == PayloadJSON && len(raw) > 0 && !json.Valid(raw) {
		return nil, NewTransportError(fmt.Errorf("malformed JSON in response body"))
	}

	return r, nil
}

// roundTrip sends the request through the bulkhead and breaker when they are
// configured.
func (c *Client) roundTrip(httpReq *http.Request) (*http.Response, error) {
	if c.bulkhead == nil {
		return c.send(httpReq)
	}
	return resilience.ExecuteWithResult(c.bulkhead, httpReq.Context(), func() (*http.Response, error) {
		return c.send(httpReq)
	})
}

func (c *Client) send(httpReq *http.Request) (*http.Response, error) {
	if c.breaker == nil {
		return c.transport.Do(httpReq)
	}
	var resp *http.Response
	err := c.breaker.Execute(func() error {
		var execErr error
		resp, execErr = c.transport.Do(httpReq)
		return execErr
	})
	return resp, err
}

// classifyTransportError maps a failed round trip to the error taxonomy:
// caller cancellation first, then the attempt deadline, then plain transport.
func (c *Client) classifyTransportError(ctx, attemptCtx context.Context, timeout time.Duration, err error) *Error {
	if ctx.Err() != nil {
		return NewCancelledError(ctx.Err())
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return NewTimeoutError(timeout.Milliseconds(), err)
	}
	return NewTransportError(err)
}

// mergeHeaders applies precedence: client defaults, then the bearer token,
// then per-call overrides, then request-ID injection.
func (c *Client) mergeHeaders(ctx context.Context, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(c.config.Headers)+len(overrides)+2)
	for k, v := range c.config.Headers {
		merged[k] = v
	}
	if tok := c.BearerToken(); tok != "" {
		merged["Authorization"] = "Bearer " + tok
	}
	for k, v := range overrides {
		merged[k] = v
	}
	if headerGet(merged, c.config.TraceIDHeader) == "" {
		id := RequestIDFromContext(ctx)
		if id == "" {
			id = c.config.NewTraceID()
		}
		merged[c.config.TraceIDHeader] = id
	}
	return merged
}

// policyFor picks the per-call retry policy: call override, client default,
// or the stock single-attempt policy.
func (c *Client) policyFor(override *RetryPolicy) RetryPolicy {
	switch {
	case override != nil:
		p := *override
		p.ApplyDefaults()
		return p
	case c.config.Retry != nil:
		return *c.config.Retry
	default:
		return DefaultRetryPolicy()
	}
}

// timeoutFor picks the effective per-attempt deadline. Zero means the
// client default; NoTimeout (or a non-positive result) disables the guard.
func (c *Client) timeoutFor(override time.Duration) time.Duration {
	timeout := c.config.Timeout
	if override != 0 {
		timeout = override
	}
	if timeout <= 0 {
		return 0
	}
	return timeout
}
