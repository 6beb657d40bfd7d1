package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

const knownLabel = "March 2023 Form A"

func TestDerive_KnownFixedPoint(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	got, err := d.Derive(knownLabel)
	require.NoError(t, err)
	assert.Equal(t, FallbackToken, got)
}

func TestDerive_Deterministic(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	for _, label := range []string{"", "a", knownLabel, "date_location_sets", "getexam/42", "Математика"} {
		first, err := d.Derive(label)
		require.NoError(t, err)
		second, err := d.Derive(label)
		require.NoError(t, err)
		assert.Equal(t, first, second, "label %q", label)
	}
}

func TestDerive_EmptyLabelIsOneBlock(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	got, err := d.Derive("")
	require.NoError(t, err)
	assert.Len(t, got, 32)
	assert.Regexp(t, `^[0-9A-F]+$`, got)
}

func TestDerive_LengthGrowsByBlock(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	tests := []struct {
		label string
		want  int
	}{
		{"", 32},
		{strings.Repeat("x", 15), 32},
		{strings.Repeat("x", 16), 64},
		{knownLabel, 64},
		{strings.Repeat("x", 32), 96},
	}
	for _, tt := range tests {
		got, err := d.Derive(tt.label)
		require.NoError(t, err)
		assert.Len(t, got, tt.want, "label %q", tt.label)
	}
}

func TestDerive_ReverseRoundTrip(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	for _, label := range []string{"", "SAT", knownLabel, "Digital SAT Practice Test 4: Математика"} {
		tok, err := d.Derive(label)
		require.NoError(t, err)

		back, err := d.Reverse(tok)
		require.NoError(t, err)
		assert.Equal(t, label, back)
	}
}

func TestDerive_InvalidKeysSurfaceError(t *testing.T) {
	d := NewDeriver(crypto.KeyMaterial{KeyA: "short", KeyB: crypto.DefaultKeyB})

	_, err := d.Derive(knownLabel)
	require.ErrorIs(t, err, ErrDerivationFailed)
	require.ErrorIs(t, err, crypto.ErrInvalidKeyMaterial)
}

func TestDeriveOrFallback(t *testing.T) {
	good := NewDeriver(crypto.DefaultKeyMaterial())
	tok, fellBack := good.DeriveOrFallback("Test 1")
	assert.False(t, fellBack)
	assert.NotEqual(t, FallbackToken, tok)

	bad := NewDeriver(crypto.KeyMaterial{})
	tok, fellBack = bad.DeriveOrFallback("Test 1")
	assert.True(t, fellBack)
	assert.Equal(t, FallbackToken, tok)
}

func TestReverse_Malformed(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	for _, in := range []string{"zz", "ABC", "00112233"} {
		_, err := d.Reverse(in)
		assert.ErrorIs(t, err, ErrMalformedToken, "input %q", in)
	}
}

func TestAnalyze(t *testing.T) {
	d := NewDeriver(crypto.DefaultKeyMaterial())

	a := d.Analyze(FallbackToken)
	assert.True(t, a.IsHex)
	assert.True(t, a.Decoded)
	assert.True(t, a.Fallback)
	assert.Equal(t, 64, a.Length)
	assert.Equal(t, 2, a.Blocks)
	assert.Equal(t, knownLabel, a.Label)

	a = d.Analyze("not a token")
	assert.False(t, a.IsHex)
	assert.False(t, a.Decoded)
	assert.Zero(t, a.Blocks)
}
