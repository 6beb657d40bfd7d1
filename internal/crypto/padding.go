package crypto

import "fmt"

// PKCS7Pad appends PKCS#7 padding to data. A full block of padding is added
// when data is already block aligned, so the result is never empty.
func PKCS7Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlockLen, blockSize)
	}

	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data), len(data)+n)
	copy(padded, data)
	for i := 0; i < n; i++ {
		padded = append(padded, byte(n))
	}
	return padded, nil
}

// PKCS7Unpad strips PKCS#7 padding, checking every padding byte.
func PKCS7Unpad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 || blockSize > 255 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBlockLen, blockSize)
	}
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidBlockLength
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
