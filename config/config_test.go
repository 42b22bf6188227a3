package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Timeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", s.Timeout)
	}
	if s.RetryAttempts != 1 {
		t.Errorf("expected default 1 attempt, got %d", s.RetryAttempts)
	}
	if s.RetryBackoff != 300*time.Millisecond {
		t.Errorf("expected default 300ms backoff, got %v", s.RetryBackoff)
	}
	if s.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %q", s.Logging.Level)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
base_url: http://internal.svc:8080
public_base_url: https://api.example.com
timeout: 5s
retry_attempts: 3
retry_backoff: 100ms
logging:
  level: debug
  format: json
`)

	s, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "http://internal.svc:8080" {
		t.Errorf("unexpected base URL: %q", s.BaseURL)
	}
	if s.PublicBaseURL != "https://api.example.com" {
		t.Errorf("unexpected public base URL: %q", s.PublicBaseURL)
	}
	if s.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", s.Timeout)
	}
	if s.RetryAttempts != 3 {
		t.Errorf("expected 3 attempts, got %d", s.RetryAttempts)
	}
	if s.RetryBackoff != 100*time.Millisecond {
		t.Errorf("expected 100ms backoff, got %v", s.RetryBackoff)
	}
	if s.Logging.Level != "debug" || s.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", s.Logging)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", `
base_url: http://from-file
retry_attempts: 2
`)
	t.Setenv("API_BASE_URL", "http://from-env")
	t.Setenv("API_LOGGING_LEVEL", "warn")

	s, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.BaseURL != "http://from-env" {
		t.Errorf("environment must override the file, got %q", s.BaseURL)
	}
	if s.RetryAttempts != 2 {
		t.Errorf("file value must survive where env is silent, got %d", s.RetryAttempts)
	}
	if s.Logging.Level != "warn" {
		t.Errorf("expected nested env override, got %q", s.Logging.Level)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "API_PUBLIC_BASE_URL=https://dotenv.example.com\n")

	s, err := Load(WithEnvFile(path))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.PublicBaseURL != "https://dotenv.example.com" {
		t.Errorf("expected value from .env file, got %q", s.PublicBaseURL)
	}
}

func TestLoad_InvalidRetryAttempts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yml", "retry_attempts: -1\n")

	if _, err := Load(WithConfigFile(path)); err == nil {
		t.Fatal("expected a validation error for negative attempts")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	if _, err := Load(WithConfigFile("/nonexistent/config.yml")); err == nil {
		t.Fatal("expected an error for a missing explicit config file")
	}
}

func TestFindFirst(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "a.yml", "x: 1\n")

	if got := findFirst(filepath.Join(dir, "missing.yml"), existing); got != existing {
		t.Errorf("expected %q, got %q", existing, got)
	}
	if got := findFirst(filepath.Join(dir, "missing.yml")); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
