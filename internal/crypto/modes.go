package crypto

import (
	"crypto/cipher"
	"fmt"
)

// CBC is cipher-block chaining with a fixed IV.
type CBC struct {
	IV []byte
}

// NewCBC returns a CBC mode bound to iv.
func NewCBC(iv []byte) *CBC {
	return &CBC{IV: iv}
}

// Name implements [Mode].
func (m *CBC) Name() string { return "cbc" }

// Encrypt implements [Mode].
func (m *CBC) Encrypt(block cipher.Block, plaintext []byte) ([]byte, error) {
	if len(m.IV) != block.BlockSize() {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrInvalidIVSize, block.BlockSize(), len(m.IV))
	}

	padded, err := PKCS7Pad(plaintext, block.BlockSize())
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, m.IV).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt implements [Mode].
func (m *CBC) Decrypt(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if len(m.IV) != block.BlockSize() {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrInvalidIVSize, block.BlockSize(), len(m.IV))
	}
	if err := checkCiphertext(block, ciphertext); err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, m.IV).CryptBlocks(plaintext, ciphertext)
	return PKCS7Unpad(plaintext, block.BlockSize())
}

// ECB encrypts every block independently.
type ECB struct{}

// NewECB returns the ECB mode.
func NewECB() *ECB {
	return &ECB{}
}

// Name implements [Mode].
func (m *ECB) Name() string { return "ecb" }

// Encrypt implements [Mode].
func (m *ECB) Encrypt(block cipher.Block, plaintext []byte) ([]byte, error) {
	padded, err := PKCS7Pad(plaintext, block.BlockSize())
	if err != nil {
		return nil, err
	}

	bs := block.BlockSize()
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += bs {
		block.Encrypt(ciphertext[i:i+bs], padded[i:i+bs])
	}
	return ciphertext, nil
}

// Decrypt implements [Mode].
func (m *ECB) Decrypt(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if err := checkCiphertext(block, ciphertext); err != nil {
		return nil, err
	}

	bs := block.BlockSize()
	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += bs {
		block.Decrypt(plaintext[i:i+bs], ciphertext[i:i+bs])
	}
	return PKCS7Unpad(plaintext, bs)
}

func checkCiphertext(block cipher.Block, ciphertext []byte) error {
	if len(ciphertext) == 0 {
		return ErrEmptyCiphertext
	}
	if len(ciphertext)%block.BlockSize() != 0 {
		return fmt.Errorf("%w: %d bytes", ErrInvalidBlockLength, len(ciphertext))
	}
	return nil
}

// EncryptCBC encrypts plaintext with alg in CBC mode.
func EncryptCBC(alg Algorithm, key, iv, plaintext []byte) ([]byte, error) {
	block, err := NewBlock(alg, key)
	if err != nil {
		return nil, err
	}
	return NewCBC(iv).Encrypt(block, plaintext)
}

// DecryptCBC decrypts ciphertext with alg in CBC mode.
func DecryptCBC(alg Algorithm, key, iv, ciphertext []byte) ([]byte, error) {
	block, err := NewBlock(alg, key)
	if err != nil {
		return nil, err
	}
	return NewCBC(iv).Decrypt(block, ciphertext)
}

// EncryptECB encrypts plaintext with alg in ECB mode.
func EncryptECB(alg Algorithm, key, plaintext []byte) ([]byte, error) {
	block, err := NewBlock(alg, key)
	if err != nil {
		return nil, err
	}
	return NewECB().Encrypt(block, plaintext)
}

// DecryptECB decrypts ciphertext with alg in ECB mode.
func DecryptECB(alg Algorithm, key, ciphertext []byte) ([]byte, error) {
	block, err := NewBlock(alg, key)
	if err != nil {
		return nil, err
	}
	return NewECB().Decrypt(block, ciphertext)
}
