package recovery

import (
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

type sweepCipher struct {
	name string
	alg  crypto.Algorithm
	cbc  bool
}

// sweepCiphers is the algorithm/mode order of the sweep. CBC runs with an
// all-zero IV.
var sweepCiphers = []sweepCipher{
	{name: "aes-ecb", alg: crypto.AES},
	{name: "aes-cbc", alg: crypto.AES, cbc: true},
	{name: "des-ecb", alg: crypto.DES},
	{name: "3des-ecb", alg: crypto.TripleDES},
}

// sweepBattery crosses both secrets with every cipher and key encoding. The
// input is read as base64 ciphertext.
//
// The AES rows with hex or base64 keys stay in the cross product but cannot
// accept for valid key material: a 16-byte secret decodes to 8 (hex) or 12
// (base64) bytes and AES needs 16, 24 or 32. Only the DES rows make use of
// the decoded keys.
func sweepBattery(keys crypto.KeyMaterial) []Hypothesis {
	secrets := []struct {
		label  string
		secret string
	}{
		{"key-a", keys.KeyA},
		{"key-b", keys.KeyB},
	}

	var hs []Hypothesis
	for _, s := range secrets {
		for _, c := range sweepCiphers {
			for _, enc := range crypto.KeyEncodings() {
				hs = append(hs, Hypothesis{
					Name:          fmt.Sprintf("%s(%s,%s)", c.name, s.label, enc),
					Stage:         StageSweep,
					Transform:     sweepDecrypt(c, enc, s.secret),
					RequireChange: true,
				})
			}
		}
	}
	return hs
}

func sweepDecrypt(c sweepCipher, enc crypto.KeyEncoding, secret string) func(string) (string, bool) {
	return func(in string) (string, bool) {
		key, err := crypto.DecodeKey(enc, secret)
		if err != nil {
			return "", false
		}

		ciphertext, ok := decodeBase64Loose(in)
		if !ok {
			return "", false
		}

		var plaintext []byte
		if c.cbc {
			block, err := crypto.NewBlock(c.alg, key)
			if err != nil {
				return "", false
			}
			plaintext, err = crypto.NewCBC(make([]byte, block.BlockSize())).Decrypt(block, ciphertext)
			if err != nil {
				return "", false
			}
		} else {
			plaintext, err = crypto.DecryptECB(c.alg, key, ciphertext)
			if err != nil {
				return "", false
			}
		}

		if !utf8.Valid(plaintext) {
			return "", false
		}
		return string(plaintext), true
	}
}
