package apiclient

import (
	"sync/atomic"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/serhatcn/apikit/logger"
)

// bearerCell is a lock-free cell for the shared bearer token. Requests read
// it while merging headers; callers may swap it at any time.
type bearerCell struct {
	v atomic.Value // string
}

func (b *bearerCell) load() string {
	if s, ok := b.v.Load().(string); ok {
		return s
	}
	return ""
}

func (b *bearerCell) store(token string) {
	b.v.Store(token)
}

// SetBearerToken sets the bearer token attached to subsequent requests.
// Tokens that parse as JWTs are checked (unverified) for expiry; an already
// expired token logs a warning but is still stored.
func (c *Client) SetBearerToken(token string) {
	c.bearer.store(token)
	if token == "" {
		return
	}
	if exp, ok := tokenExpiry(token); ok && exp.Before(time.Now()) {
		c.log.Warn("bearer token is already expired", logger.Fields(
			"expired_at", exp.Format(time.RFC3339),
		))
	}
}

// ClearBearerToken removes the bearer token.
func (c *Client) ClearBearerToken() {
	c.bearer.store("")
}

// BearerToken returns the current bearer token, or empty.
func (c *Client) BearerToken() string {
	return c.bearer.load()
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. Non-JWT tokens and tokens without exp report false.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
