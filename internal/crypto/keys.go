// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Default secrets recovered from the Bluebook web client.
const (
	DefaultKeyA = "1118394794UHWU29"
	DefaultKeyB = "DDWDEF2344564412"
)

// keyMaterialSize is the length every secret must have: one AES-128 key or
// one AES block worth of IV.
const keyMaterialSize = 16

// KeyMaterial holds the two fixed ASCII secrets used by the value-token
// scheme. KeyA is the AES key and KeyB is the IV; the reversed assignment is
// a different hypothesis, see [KeyMaterial.Swapped].
type KeyMaterial struct {
	KeyA string
	KeyB string
}

// DefaultKeyMaterial returns the hard-coded secrets.
func DefaultKeyMaterial() KeyMaterial {
	return KeyMaterial{KeyA: DefaultKeyA, KeyB: DefaultKeyB}
}

// Validate checks that both secrets are exactly 16 printable ASCII bytes.
func (k KeyMaterial) Validate() error {
	if err := validateSecret("key A", k.KeyA); err != nil {
		return err
	}
	return validateSecret("key B", k.KeyB)
}

func validateSecret(name, secret string) error {
	if len(secret) != keyMaterialSize {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidKeyMaterial, name, keyMaterialSize, len(secret))
	}
	for i := 0; i < len(secret); i++ {
		if secret[i] < 0x20 || secret[i] > 0x7e {
			return fmt.Errorf("%w: %s contains non-printable byte at %d", ErrInvalidKeyMaterial, name, i)
		}
	}
	return nil
}

// Primary returns the empirically confirmed assignment: key = KeyA, iv = KeyB.
func (k KeyMaterial) Primary() (key, iv []byte) {
	return []byte(k.KeyA), []byte(k.KeyB)
}

// Swapped returns the reversed assignment: key = KeyB, iv = KeyA.
func (k KeyMaterial) Swapped() (key, iv []byte) {
	return []byte(k.KeyB), []byte(k.KeyA)
}

// Secrets returns both secrets in KeyA, KeyB order.
func (k KeyMaterial) Secrets() []string {
	return []string{k.KeyA, k.KeyB}
}

// KeyEncoding describes how a textual secret is turned into key bytes.
type KeyEncoding string

const (
	KeyEncodingRaw    KeyEncoding = "raw"
	KeyEncodingHex    KeyEncoding = "hex"
	KeyEncodingBase64 KeyEncoding = "base64"
)

// KeyEncodings lists the encodings in the order they are tried.
func KeyEncodings() []KeyEncoding {
	return []KeyEncoding{KeyEncodingRaw, KeyEncodingHex, KeyEncodingBase64}
}

// DecodeKey interprets secret according to enc.
func DecodeKey(enc KeyEncoding, secret string) ([]byte, error) {
	switch enc {
	case KeyEncodingRaw:
		return []byte(secret), nil
	case KeyEncodingHex:
		key, err := hex.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("decode hex key: %w", err)
		}
		return key, nil
	case KeyEncodingBase64:
		key, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("decode base64 key: %w", err)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKeyEncoding, enc)
	}
}
