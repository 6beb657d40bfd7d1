package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ValueService ─────────────────────────────────────────────────────────────

func TestValueService_Derive(t *testing.T) {
	svc := NewValueService(token.NewDeriver(testAppConfig().KeyMaterial()), false, logger.Nop())

	got, err := svc.Derive("March 2023 Form A")
	require.NoError(t, err)
	assert.Equal(t, token.FallbackToken, got.Token)
	assert.Equal(t, "March 2023 Form A", got.Label)
	assert.False(t, got.Fallback)
}

func TestValueService_Derive_InvalidKeys(t *testing.T) {
	cfg := testAppConfig()
	cfg.KeyB = ""

	_, err := NewValueService(token.NewDeriver(cfg.KeyMaterial()), false, logger.Nop()).Derive("x")
	assert.ErrorIs(t, err, token.ErrDerivationFailed)

	got, err := NewValueService(token.NewDeriver(cfg.KeyMaterial()), true, logger.Nop()).Derive("x")
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.Equal(t, token.FallbackToken, got.Token)
}

func TestValueService_Analyze(t *testing.T) {
	svc := NewValueService(token.NewDeriver(testAppConfig().KeyMaterial()), false, logger.Nop())

	got := svc.Analyze(token.FallbackToken)
	assert.True(t, got.Decoded)
	assert.True(t, got.Fallback)
	assert.Equal(t, "March 2023 Form A", got.Label)
}

// ── DecryptService ───────────────────────────────────────────────────────────

func TestDecryptService_Decrypt(t *testing.T) {
	svcs, err := NewServices(nil, testAppConfig(), logger.Nop())
	require.NoError(t, err)

	got, ok := svcs.DecryptService.Decrypt(token.FallbackToken)
	require.True(t, ok)
	assert.Equal(t, "March 2023 Form A", got.Text)

	got, ok = svcs.DecryptService.Decrypt(`[1, 2]`)
	require.True(t, ok)
	assert.Equal(t, "plain-json", got.Hypothesis)

	assert.Len(t, svcs.DecryptService.Hypotheses(), 161)
}

// ── AppInfoService ───────────────────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService(testAppConfig(), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "test", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	cfg := testAppConfig()
	cfg.Version = ""

	svc, err := NewAppInfoService(cfg, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)

	_, err = NewServices(nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ── ClientServices ───────────────────────────────────────────────────────────

func TestNewClientServices(t *testing.T) {
	svcs := NewClientServices(nil, testAppConfig(), logger.Nop())

	require.NotNil(t, svcs.Client)
	assert.False(t, svcs.Client.IsAuthenticated())
	assert.NotNil(t, svcs.ValueService)
	assert.NotNil(t, svcs.DecryptService)
}
