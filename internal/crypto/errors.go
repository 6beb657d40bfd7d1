package crypto

import "errors"

var (
	ErrInvalidKeyMaterial  = errors.New("invalid key material")
	ErrUnknownKeyEncoding  = errors.New("unknown key encoding")
	ErrUnknownAlgorithm    = errors.New("unknown algorithm")
	ErrInvalidKeySize      = errors.New("invalid key size")
	ErrInvalidIVSize       = errors.New("invalid iv size")
	ErrInvalidBlockLength  = errors.New("input is not a multiple of the block size")
	ErrInvalidPadding      = errors.New("invalid pkcs7 padding")
	ErrEmptyCiphertext     = errors.New("empty ciphertext")
	ErrUnsupportedBlockLen = errors.New("unsupported block size")
)
