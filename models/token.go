package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential is the in-memory session held by an authenticated client.
//
// AccessToken and RefreshToken are the opaque strings returned by the
// upstream login endpoint. RegisteredClaims carries whatever the client could
// read from the access token without verifying it (the signing key belongs to
// the upstream), which is used only for expiry reporting.
type Credential struct {
	// RegisteredClaims holds the unverified claims of AccessToken. It is the
	// zero value when the access token is not a JWT.
	jwt.RegisteredClaims `json:"-"`

	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         AccountUser `json:"user"`
}

// BearerHeader returns the value of the Authorization header for c.
func (c Credential) BearerHeader() string {
	return "Bearer " + c.AccessToken
}

// ExpiresAtTime returns the access token expiry, or the zero time when the
// token carries no exp claim.
func (c Credential) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Expired reports whether the access token carries an exp claim that lies
// before now.
func (c Credential) Expired(now time.Time) bool {
	exp := c.ExpiresAtTime()
	return !exp.IsZero() && exp.Before(now)
}
