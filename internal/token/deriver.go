// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package token derives the value tokens the Bluebook API expects in its
// Value request header.
//
// A token is the AES-128-CBC ciphertext of a label under the fixed
// [crypto.KeyMaterial] (key = KeyA, iv = KeyB, PKCS#7), hex encoded in upper
// case. There is no salt and no random IV: the same label always yields the
// same token, and the upstream relies on that.
package token

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

// FallbackToken is the token of "March 2023 Form A". It is what the web
// client sent whenever derivation failed.
const FallbackToken = "0100333303F78D0658696A5F465FA63D4F7716DF75A1625A26ADCBFB2831A011"

// Deriver turns labels into value tokens and back.
type Deriver struct {
	keys crypto.KeyMaterial
}

// NewDeriver returns a Deriver bound to keys. Keys are validated lazily so a
// misconfigured process still starts and reports [ErrDerivationFailed] on use.
func NewDeriver(keys crypto.KeyMaterial) *Deriver {
	return &Deriver{keys: keys}
}

// Derive returns the value token for label.
func (d *Deriver) Derive(label string) (string, error) {
	if err := d.keys.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	key, iv := d.keys.Primary()
	ciphertext, err := crypto.EncryptCBC(crypto.AES, key, iv, []byte(label))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	return strings.ToUpper(hex.EncodeToString(ciphertext)), nil
}

// DeriveOrFallback returns the token for label, or [FallbackToken] with
// fellBack set when derivation fails.
func (d *Deriver) DeriveOrFallback(label string) (token string, fellBack bool) {
	token, err := d.Derive(label)
	if err != nil {
		return FallbackToken, true
	}
	return token, false
}

// Reverse decrypts a value token back into its label.
func (d *Deriver) Reverse(token string) (string, error) {
	if err := d.keys.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrDerivationFailed, err)
	}

	ciphertext, err := hex.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	key, iv := d.keys.Primary()
	label, err := crypto.DecryptCBC(crypto.AES, key, iv, ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	return string(label), nil
}
