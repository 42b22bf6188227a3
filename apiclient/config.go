package apiclient

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/serhatcn/apikit/logger"
	"github.com/serhatcn/apikit/resilience"
)

const defaultTimeout = 15 * time.Second

// NoTimeout disables the per-attempt deadline entirely.
const NoTimeout = time.Duration(-1)

var validate = validator.New()

// Config configures an API client.
type Config struct {
	// BaseURL is the server-only base origin, preferred in server runtimes.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"omitempty"`

	// PublicBaseURL is the publicly-exposed base origin, the only one
	// consulted in browser runtimes.
	PublicBaseURL string `yaml:"public_base_url" mapstructure:"public_base_url" validate:"omitempty"`

	// Execution describes the runtime the client dispatches from.
	// The zero value is a server runtime.
	Execution ExecutionContext `yaml:"-" mapstructure:"-"`

	// Timeout is the default per-attempt deadline. Defaults to 15s;
	// NoTimeout disables the deadline.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry is the default retry policy for calls without an override.
	// Nil means single-attempt.
	Retry *RetryPolicy `yaml:"-" mapstructure:"-"`

	// Breaker wires a circuit breaker around individual attempts.
	// Nil disables it.
	Breaker *resilience.BreakerConfig `yaml:"-" mapstructure:"-"`

	// RateLimit throttles outgoing attempts with a token bucket.
	// Nil disables it.
	RateLimit *resilience.RateLimiterConfig `yaml:"-" mapstructure:"-"`

	// Bulkhead caps concurrent in-flight attempts. Nil disables it.
	Bulkhead *resilience.BulkheadConfig `yaml:"-" mapstructure:"-"`

	// Transport is the transport primitive. Defaults to a fresh
	// *http.Client over a cloned default transport.
	Transport Doer `yaml:"-" mapstructure:"-"`

	// Logger receives config warnings and retry/debug events.
	// Defaults to the global logger tagged with the apiclient component.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// TraceIDHeader is the request-ID header name. Defaults to X-Request-ID.
	TraceIDHeader string `yaml:"trace_id_header" mapstructure:"trace_id_header"`

	// NewTraceID generates request IDs. Defaults to uuid v4.
	NewTraceID func() string `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.TraceIDHeader == "" {
		c.TraceIDHeader = "X-Request-ID"
	}
	if c.NewTraceID == nil {
		c.NewTraceID = newTraceID
	}
	if c.Logger == nil {
		c.Logger = logger.WithComponent("apiclient")
	}
	if c.Retry != nil {
		c.Retry.ApplyDefaults()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("apiclient: invalid config: %w", err)
	}
	if c.Retry != nil {
		if err := validate.Struct(c.Retry); err != nil {
			return fmt.Errorf("apiclient: invalid retry policy: %w", err)
		}
	}
	return nil
}
