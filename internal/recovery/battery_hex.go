package recovery

import (
	"encoding/hex"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

var hexPattern = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

func isHex(s string) bool { return hexPattern.MatchString(s) }

// hexCipherBattery decodes hex and decrypts with AES-CBC, first with the
// primary assignment and then with the swapped one. This is the exact inverse
// of token derivation.
func hexCipherBattery(keys crypto.KeyMaterial) []Hypothesis {
	primaryKey, primaryIV := keys.Primary()
	swappedKey, swappedIV := keys.Swapped()

	return []Hypothesis{
		{
			Name:       "hex-aes-cbc(key-a,iv-b)",
			Stage:      StageHexCipher,
			Applies:    isHex,
			Transform:  hexAESCBC(primaryKey, primaryIV),
			AllowEmpty: true,
		},
		{
			Name:       "hex-aes-cbc(key-b,iv-a)",
			Stage:      StageHexCipher,
			Applies:    isHex,
			Transform:  hexAESCBC(swappedKey, swappedIV),
			AllowEmpty: true,
		},
	}
}

func hexAESCBC(key, iv []byte) func(string) (string, bool) {
	return func(in string) (string, bool) {
		ciphertext, err := hex.DecodeString(in)
		if err != nil {
			return "", false
		}

		plaintext, err := crypto.DecryptCBC(crypto.AES, key, iv, ciphertext)
		if err != nil || !utf8.Valid(plaintext) {
			return "", false
		}
		return string(plaintext), true
	}
}
