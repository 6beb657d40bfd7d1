package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"
)

// Algorithm names a block cipher supported by [NewBlock].
type Algorithm string

const (
	AES       Algorithm = "aes"
	DES       Algorithm = "des"
	TripleDES Algorithm = "3des"
)

// NewBlock builds a cipher.Block for alg from key.
//
// Key handling follows the JavaScript client the scheme was lifted from:
// DES reads only the first 8 bytes of a longer key, and TripleDES expands
// 8 bytes to K1K1K1, 16 bytes to K1K2K1 and truncates anything of 24 bytes
// or more. AES keys are used verbatim.
func NewBlock(alg Algorithm, key []byte) (cipher.Block, error) {
	switch alg {
	case AES:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
		}
		return block, nil
	case DES:
		if len(key) < des.BlockSize {
			return nil, fmt.Errorf("%w: des needs %d bytes, got %d", ErrInvalidKeySize, des.BlockSize, len(key))
		}
		return des.NewCipher(key[:des.BlockSize])
	case TripleDES:
		expanded, err := expandTripleDESKey(key)
		if err != nil {
			return nil, err
		}
		return des.NewTripleDESCipher(expanded)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

func expandTripleDESKey(key []byte) ([]byte, error) {
	const k = des.BlockSize

	switch {
	case len(key) >= 3*k:
		return key[:3*k], nil
	case len(key) == 2*k:
		expanded := make([]byte, 0, 3*k)
		expanded = append(expanded, key...)
		return append(expanded, key[:k]...), nil
	case len(key) == k:
		expanded := make([]byte, 0, 3*k)
		return append(append(append(expanded, key...), key...), key...), nil
	default:
		return nil, fmt.Errorf("%w: 3des needs 8, 16 or 24 bytes, got %d", ErrInvalidKeySize, len(key))
	}
}
