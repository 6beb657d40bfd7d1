// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_KEY_A":                 "AAAAAAAAAAAAAAAA",
		"APP_KEY_B":                 "BBBBBBBBBBBBBBBB",
		"APP_LISTING_LABEL":         "listing",
		"APP_RESOURCE_LABEL_FORMAT": "exam-%s",
		"APP_USE_FALLBACK_TOKEN":    "true",
		"APP_VERSION":               "1.2.3",

		"AUTH_EMAIL":    "student@example.com",
		"AUTH_PASSWORD": "secret",

		"UPSTREAM_BASE_URL":        "https://upstream.example",
		"UPSTREAM_REQUEST_TIMEOUT": "5s",
		"UPSTREAM_USER_AGENT":      "agent/1.0",
		"UPSTREAM_ORIGIN":          "https://origin.example",
		"UPSTREAM_REFERER":         "https://origin.example/",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "3s",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		"WORKERS_FETCH_CONCURRENCY": "8",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "AAAAAAAAAAAAAAAA", cfg.App.KeyA)
	assert.Equal(t, "BBBBBBBBBBBBBBBB", cfg.App.KeyB)
	assert.Equal(t, "listing", cfg.App.ListingLabel)
	assert.Equal(t, "exam-%s", cfg.App.ResourceLabelFormat)
	assert.True(t, cfg.App.UseFallbackToken)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "student@example.com", cfg.Auth.Email)
	assert.Equal(t, "secret", cfg.Auth.Password)

	assert.Equal(t, "https://upstream.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "agent/1.0", cfg.Upstream.UserAgent)
	assert.Equal(t, "https://origin.example", cfg.Upstream.Origin)
	assert.Equal(t, "https://origin.example/", cfg.Upstream.Referer)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 8, cfg.Workers.FetchConcurrency)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_FETCH_CONCURRENCY": "many"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

var configEnvVars = []string{
	"CONFIG",
	"APP_KEY_A", "APP_KEY_B", "APP_LISTING_LABEL", "APP_RESOURCE_LABEL_FORMAT",
	"APP_USE_FALLBACK_TOKEN", "APP_VERSION",
	"AUTH_EMAIL", "AUTH_PASSWORD",
	"UPSTREAM_BASE_URL", "UPSTREAM_REQUEST_TIMEOUT", "UPSTREAM_USER_AGENT",
	"UPSTREAM_ORIGIN", "UPSTREAM_REFERER",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
	"WORKERS_FETCH_CONCURRENCY",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvVars {
		t.Setenv(k, "")
	}
}
