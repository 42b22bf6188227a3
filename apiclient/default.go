package apiclient

import (
	"context"
	"sync"

	"github.com/serhatcn/apikit/config"
	"github.com/serhatcn/apikit/logger"
)

// The conventional shared client. Built lazily, exactly once, from the
// environment configuration prevailing at first use.
var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide client, constructing it on first use
// from config.Load. Load or construction failures are logged and fall back
// to a client with stock defaults, so Default never returns nil.
func Default() *Client {
	defaultOnce.Do(func() {
		cfg := Config{}
		if settings, err := config.Load(); err != nil {
			logger.Warn("falling back to default client settings", logger.Fields(
				"error", err.Error(),
			))
		} else {
			cfg.BaseURL = settings.BaseURL
			cfg.PublicBaseURL = settings.PublicBaseURL
			cfg.Timeout = settings.Timeout
			cfg.Retry = &RetryPolicy{
				MaxAttempts: settings.RetryAttempts,
				Backoff:     settings.RetryBackoff,
			}
		}

		c, err := New(cfg)
		if err != nil {
			logger.Warn("invalid client settings, using defaults", logger.Fields(
				"error", err.Error(),
			))
			c, _ = New(Config{})
		}
		defaultClient = c
	})
	return defaultClient
}

// SetBearerToken sets the bearer token on the default client.
func SetBearerToken(token string) {
	Default().SetBearerToken(token)
}

// ClearBearerToken clears the bearer token on the default client.
func ClearBearerToken() {
	Default().ClearBearerToken()
}

// Do executes a request on the default client.
func Do(ctx context.Context, req Request) (*Response, error) {
	return Default().Do(ctx, req)
}
