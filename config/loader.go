package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is prepended to environment keys (API_BASE_URL and friends).
const envPrefix = "API"

// envKeys are the settings keys bound to environment variables.
var envKeys = []string{
	"base_url",
	"public_base_url",
	"timeout",
	"retry_attempts",
	"retry_backoff",
	"logging.level",
	"logging.format",
	"logging.output",
}

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. Empty means search.
	ConfigFile string
	// EnvFile is an explicit .env file path. Empty means search.
	EnvFile string
}

// Option is a functional option for Load.
type Option func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads settings from config.yml, .env, and the process environment,
// applies defaults, and validates the result.
func Load(opts ...Option) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst("./config.yml", "./config/config.yml")
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst("./.env")
	}

	// .env first so viper's env binding sees its values.
	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load env file %s: %v\n", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: unmarshal settings: %w", err)
	}

	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// findFirst returns the first path that exists, or empty.
func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
