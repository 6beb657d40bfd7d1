// Package crypto contains the block-cipher plumbing shared by value-token
// derivation and the cipher trial engine: the fixed [KeyMaterial], block
// construction for AES, DES and TripleDES, CBC and ECB modes, and strict
// PKCS#7 padding.
//
// The standard library ships the ciphers and CBC but neither ECB nor PKCS#7,
// so both are implemented here on top of [cipher.Block].
package crypto

import "crypto/cipher"

// Mode is a block-cipher mode of operation with PKCS#7 padding applied on
// encryption and removed on decryption.
type Mode interface {
	// Name returns a short identifier such as "cbc" or "ecb".
	Name() string

	// Encrypt pads plaintext and encrypts it with block.
	Encrypt(block cipher.Block, plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with block and strips the padding.
	Decrypt(block cipher.Block, ciphertext []byte) ([]byte, error)
}
