package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	assert.Equal(t, crypto.DefaultKeyA, cfg.App.KeyA)
	assert.Equal(t, crypto.DefaultKeyB, cfg.App.KeyB)
	assert.Equal(t, "date_location_sets", cfg.App.ListingLabel)
	assert.Equal(t, "getexam/%s", cfg.App.ResourceLabelFormat)
	assert.Equal(t, "https://api-prod.bluebook.plus", cfg.Upstream.BaseURL)
	assert.Equal(t, 4, cfg.Workers.FetchConcurrency)
	assert.False(t, cfg.App.UseFallbackToken)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{ListingLabel: "listing"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "listing", cfg.App.ListingLabel)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides an
// earlier one while zero fields leave earlier values in place.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "env"},
			Server:  Server{HTTPAddress: "localhost:1111", RequestTimeout: time.Second},
			Workers: Workers{FetchConcurrency: 2},
		},
		&StructuredConfig{
			App:    App{Version: "flags"},
			Server: Server{HTTPAddress: "localhost:2222"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flags", cfg.App.Version)
	assert.Equal(t, "localhost:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 2, cfg.Workers.FetchConcurrency)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{"short key", StructuredConfig{App: App{KeyA: "short"}}, ErrInvalidAppConfigs},
		{"label format without verb", StructuredConfig{App: App{ResourceLabelFormat: "getexam"}}, ErrInvalidAppConfigs},
		{"label format with two verbs", StructuredConfig{App: App{ResourceLabelFormat: "%s/%s"}}, ErrInvalidAppConfigs},
		{"label format with other verb", StructuredConfig{App: App{ResourceLabelFormat: "%d-%s"}}, ErrInvalidAppConfigs},
		{"upstream scheme", StructuredConfig{Upstream: Upstream{BaseURL: "ftp://bluebook"}}, ErrInvalidUpstreamConfigs},
		{"upstream host", StructuredConfig{Upstream: Upstream{BaseURL: "https://"}}, ErrInvalidUpstreamConfigs},
		{"adapter address", StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}, ErrInvalidAdapterConfigs},
		{"negative timeout", StructuredConfig{Server: Server{RequestTimeout: -time.Second}}, ErrInvalidServerConfigs},
		{"negative workers", StructuredConfig{Workers: Workers{FetchConcurrency: -1}}, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuild_Views(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{Email: "student@example.com", Password: "secret"},
		Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	client := cfg.ClientConfig()
	assert.True(t, client.ViaProxy())
	assert.Equal(t, "student@example.com", client.Auth.Email)
	assert.Equal(t, cfg.App, client.App)
	assert.Equal(t, crypto.DefaultKeyMaterial(), client.App.KeyMaterial())

	proxy := cfg.ProxyConfig()
	assert.Equal(t, cfg.Server, proxy.Server)
	assert.Equal(t, cfg.Upstream, proxy.Upstream)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":       "env-version",
		"APP_LISTING_LABEL": "env-listing",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-listing", b.configs[0].App.ListingLabel)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"UPSTREAM_REQUEST_TIMEOUT": "whenever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Workers.FetchConcurrency = 9
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, 9, b.configs[1].Workers.FetchConcurrency)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers.FetchConcurrency)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	last := StructuredJSONConfig{}
	last.App.Version = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}
