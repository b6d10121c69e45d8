// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the overlay
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version and
	// the error-disclosure switch.
	App App `envPrefix:"APP_"`

	// Storage holds the bucket bindings and the settings shared by the
	// storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", "warn", ...).
	// Empty keeps the logger default (debug).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ExposeStackTrace appends the goroutine stack to the body of 500
	// responses produced by recovered panics. Meant for local debugging
	// only; keep disabled in production.
	// Env: APP_EXPOSE_STACK_TRACE
	ExposeStackTrace bool `env:"EXPOSE_STACK_TRACE"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response
	// (e.g. "30s", "1m"). Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration of all object-storage backends.
type Storage struct {
	// Buckets maps a binding name to a storage URL. The URL scheme selects
	// the backend: file://, http://, https://, postgres://, postgresql://
	// or sqlite://.
	// Env: STORAGE_BUCKETS="assets=file:///srv/assets,cdn=https://cdn.example.com"
	Buckets map[string]string `env:"BUCKETS" envSeparator:"," envKeyValSeparator:"="`

	// HTTP holds settings of the HTTP storage client.
	HTTP HTTPStorage `envPrefix:"HTTP_"`

	// DB holds settings of SQL-backed buckets.
	DB DB `envPrefix:"DB_"`
}

// HTTPStorage holds settings for buckets served over HTTP.
type HTTPStorage struct {
	// Timeout is the per-request timeout of the storage client.
	// Env: STORAGE_HTTP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// DB holds settings for SQL-backed buckets.
type DB struct {
	// MaxOpenConns limits open connections per SQL bucket. Zero keeps the
	// backend default.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// Migrate runs the embedded schema migrations when a SQL bucket is
	// opened.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
