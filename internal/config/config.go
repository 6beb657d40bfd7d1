// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bluebook binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the value-token key material, derivation labels and the
	// application version.
	App App `envPrefix:"APP_"`

	// Auth holds the upstream account used by the client to log in.
	Auth Auth `envPrefix:"AUTH_"`

	// Upstream describes the Bluebook API and the browser profile the proxy
	// presents to it.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Server holds the listen address and timeouts of the proxy server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points the client at a running proxy. When HTTPAddress is
	// empty the client talks to the upstream directly.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the bulk exam fetcher.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration of the value-token scheme.
type App struct {
	// KeyA is the AES key of the value-token scheme, 16 ASCII bytes.
	// Env: APP_KEY_A
	KeyA string `env:"KEY_A"`

	// KeyB is the CBC initialisation vector, 16 ASCII bytes.
	// Env: APP_KEY_B
	KeyB string `env:"KEY_B"`

	// ListingLabel is the label whose token authorises the resource listing.
	// Env: APP_LISTING_LABEL
	ListingLabel string `env:"LISTING_LABEL"`

	// ResourceLabelFormat builds the label of an exam fetched without a
	// human label. It must contain exactly one %s verb for the exam id.
	// Env: APP_RESOURCE_LABEL_FORMAT
	ResourceLabelFormat string `env:"RESOURCE_LABEL_FORMAT"`

	// UseFallbackToken sends the fixed fallback token when derivation fails
	// instead of failing the request.
	// Env: APP_USE_FALLBACK_TOKEN
	UseFallbackToken bool `env:"USE_FALLBACK_TOKEN"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the upstream account credentials.
type Auth struct {
	// Env: AUTH_EMAIL
	Email string `env:"EMAIL"`

	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`
}

// Upstream describes the Bluebook API.
type Upstream struct {
	// BaseURL of the API, e.g. "https://api-prod.bluebook.plus".
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single upstream call.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: UPSTREAM_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Origin and Referer are sent with every request so the API sees the
	// same headers the web client sends.
	// Env: UPSTREAM_ORIGIN, UPSTREAM_REFERER
	Origin  string `env:"ORIGIN"`
	Referer string `env:"REFERER"`
}

// Server holds network and timeout settings of the proxy server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the address of a running proxy used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the proxy, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of one call to the proxy.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FetchConcurrency bounds the number of exams fetched at once.
	// Env: WORKERS_FETCH_CONCURRENCY
	FetchConcurrency int `env:"FETCH_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Zero fields left after merging are filled with defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
