// Package config loads client dispatch settings from YAML files, .env
// files, and process environment variables.
//
// Precedence, lowest to highest: config.yml, .env, process environment.
// Environment keys use the API_ prefix (e.g. API_BASE_URL,
// API_PUBLIC_BASE_URL, API_TIMEOUT, API_RETRY_ATTEMPTS, API_RETRY_BACKOFF).
package config
