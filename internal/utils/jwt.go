package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidAuthorizationHeader is returned by [ParseBearerToken].
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// ParseUnverifiedClaims reads the registered claims of a JWT without checking
// its signature.
//
// The upstream signs its access tokens with a key the client never sees, so
// the claims are informational only: they must not be used for any
// authorization decision.
func ParseUnverifiedClaims(tokenString string) (jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims

	_, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims)
	if err != nil {
		return jwt.RegisteredClaims{}, fmt.Errorf("error parsing unverified token: %w", err)
	}
	return claims, nil
}
