package apiclient

import (
	"context"
	"time"
)

// CacheMode is an opaque caching hint handed through to the transport.
// The stock transport ignores it; caching transports read it from the
// outgoing request's context via CacheHintFrom.
type CacheMode string

// Fetch-style cache modes.
const (
	CacheDefault      CacheMode = ""
	CacheNoStore      CacheMode = "no-store"
	CacheNoCache      CacheMode = "no-cache"
	CacheReload       CacheMode = "reload"
	CacheForce        CacheMode = "force-cache"
	CacheOnlyIfCached CacheMode = "only-if-cached"
)

// CacheOptions is a provider-specific caching extension: a revalidation
// window and invalidation tags. It is attached to outgoing requests only in
// server runtimes.
type CacheOptions struct {
	// Revalidate is the window after which a cached response is revalidated.
	Revalidate time.Duration
	// Tags name cache entries for later invalidation.
	Tags []string
}

type cacheHintKey struct{}
type cacheOptionsKey struct{}

// withCacheHint stores a cache mode in the context.
func withCacheHint(ctx context.Context, mode CacheMode) context.Context {
	return context.WithValue(ctx, cacheHintKey{}, mode)
}

// CacheHintFrom retrieves the cache mode from a request context.
func CacheHintFrom(ctx context.Context) (CacheMode, bool) {
	mode, ok := ctx.Value(cacheHintKey{}).(CacheMode)
	return mode, ok
}

// withCacheOptions stores cache options in the context.
func withCacheOptions(ctx context.Context, opts *CacheOptions) context.Context {
	return context.WithValue(ctx, cacheOptionsKey{}, opts)
}

// CacheOptionsFrom retrieves cache options from a request context, or nil.
func CacheOptionsFrom(ctx context.Context) *CacheOptions {
	if opts, ok := ctx.Value(cacheOptionsKey{}).(*CacheOptions); ok {
		return opts
	}
	return nil
}
