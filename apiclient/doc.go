// Package apiclient is a request-dispatch layer between application code
// and an HTTP backend. It resolves the target origin for the current
// execution context, builds well-formed requests, enforces per-attempt
// timeouts, retries transient failures with exponential backoff, and
// normalizes success and error payload handling behind a small typed
// surface.
//
// # Basic Usage
//
//	client, err := apiclient.New(apiclient.Config{
//	    BaseURL:       "http://internal-api:8080",
//	    PublicBaseURL: "https://api.example.com",
//	    Timeout:       15 * time.Second,
//	})
//
//	resp, err := client.Get(ctx, "/users/123")
//
// # Typed Calls
//
//	user, err := apiclient.Get[User](client, ctx, "/users/123")
//
// # Retries
//
//	resp, err := client.Get(ctx, "/flaky",
//	    apiclient.WithRetryPolicy(apiclient.RetryPolicy{
//	        MaxAttempts: 3,
//	        Backoff:     300 * time.Millisecond,
//	    }))
//
// Failed calls return *Error with a value-checked Kind discriminant; use
// IsHTTPError, IsTimeout, IsCancelled and StatusCode to branch on outcomes.
package apiclient
