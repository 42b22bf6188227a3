package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/serhatcn/apikit/logger"
)

var validate = validator.New()

// Settings holds the externally supplied dispatch configuration. It is read
// once, when the default client is first constructed.
type Settings struct {
	// BaseURL is the server-only base origin.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// PublicBaseURL is the publicly-exposed base origin.
	PublicBaseURL string `yaml:"public_base_url" mapstructure:"public_base_url"`

	// Timeout is the default per-attempt deadline.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// RetryAttempts is the default attempt budget per call.
	RetryAttempts int `yaml:"retry_attempts" mapstructure:"retry_attempts" validate:"omitempty,gte=1"`

	// RetryBackoff is the default base backoff between attempts.
	RetryBackoff time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`

	// Logging configures the process logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
	if s.RetryAttempts == 0 {
		s.RetryAttempts = 1
	}
	if s.RetryBackoff == 0 {
		s.RetryBackoff = 300 * time.Millisecond
	}
	s.Logging.ApplyDefaults()
}

// Validate checks that the settings are valid.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("config: invalid settings: %w", err)
	}
	return s.Logging.Validate()
}
