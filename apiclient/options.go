package apiclient

import "time"

// CallOption configures a single call made through the verb surface.
type CallOption func(*Request)

// WithHeader adds a header override to the call.
func WithHeader(key, value string) CallOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// WithHeaders adds several header overrides to the call.
func WithHeaders(headers map[string]string) CallOption {
	return func(r *Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			r.Headers[k] = v
		}
	}
}

// WithQueryParam adds a query parameter. A nil value omits the key.
func WithQueryParam(key string, value any) CallOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]any)
		}
		r.Query[key] = value
	}
}

// WithQuery adds several query parameters.
func WithQuery(query map[string]any) CallOption {
	return func(r *Request) {
		if r.Query == nil {
			r.Query = make(map[string]any, len(query))
		}
		for k, v := range query {
			r.Query[k] = v
		}
	}
}

// WithTimeout overrides the per-attempt deadline for the call.
func WithTimeout(d time.Duration) CallOption {
	return func(r *Request) {
		r.Timeout = d
	}
}

// WithNoTimeout disables the per-attempt deadline for the call.
func WithNoTimeout() CallOption {
	return func(r *Request) {
		r.Timeout = NoTimeout
	}
}

// WithCache sets the opaque cache hint passed through to the transport.
func WithCache(mode CacheMode) CallOption {
	return func(r *Request) {
		r.Cache = mode
	}
}

// WithCacheOptions sets the provider caching extension: a revalidation
// window and invalidation tags. Observed only in server runtimes.
func WithCacheOptions(revalidate time.Duration, tags ...string) CallOption {
	return func(r *Request) {
		r.CacheOptions = &CacheOptions{Revalidate: revalidate, Tags: tags}
	}
}

// WithRetryPolicy overrides the retry policy for the call.
func WithRetryPolicy(policy RetryPolicy) CallOption {
	return func(r *Request) {
		r.Retry = &policy
	}
}

// WithAttempts overrides only the attempt budget, keeping default backoff
// and retryable statuses.
func WithAttempts(n int) CallOption {
	return func(r *Request) {
		p := DefaultRetryPolicy()
		p.MaxAttempts = n
		r.Retry = &p
	}
}
