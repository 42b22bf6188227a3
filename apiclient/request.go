package apiclient

import "time"

// Request describes one outbound call. Built per call and never retained;
// retries reuse the URL, headers, and body captured before the first attempt.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, PATCH, DELETE).
	Method string
	// Path is appended to the client's resolved origin. A missing leading
	// slash is added.
	Path string
	// Query are URL query parameters. Nil values are omitted; everything
	// else is stringified and percent-encoded.
	Query map[string]any
	// Headers are request-specific headers, merged over client defaults.
	Headers map[string]string
	// Body is the request body: *MultipartBody, []byte, and io.Reader pass
	// through; other values JSON-encode when the effective Content-Type is
	// application/json, and coerce to text otherwise. GET never sends one.
	Body any
	// Timeout overrides the client's per-attempt deadline. Zero means the
	// client default; NoTimeout disables the deadline.
	Timeout time.Duration
	// Cache is an opaque caching hint passed through to the transport.
	Cache CacheMode
	// CacheOptions is the provider caching extension, observed only in
	// server runtimes.
	CacheOptions *CacheOptions
	// Retry overrides the client's retry policy for this call.
	Retry *RetryPolicy
}
