package token

import "errors"

var (
	ErrDerivationFailed = errors.New("value token derivation failed")
	ErrMalformedToken   = errors.New("malformed value token")
)
