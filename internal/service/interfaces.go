package service

import (
	"context"

	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/MKhiriev/go-bluebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// APIClient is the authenticated Bluebook API client.
//
// A client starts Unauthenticated. A successful Login moves it to
// Authenticated, Logout moves it back. Every call other than Login fails
// with [ErrNotAuthenticated] while Unauthenticated without touching the
// network.
type APIClient interface {
	// Login exchanges identity and secret for a credential. On failure the
	// previous state is kept.
	Login(ctx context.Context, identity, secret string) (models.Credential, error)

	// ListResources returns the exam index.
	ListResources(ctx context.Context) (models.ResourceIndex, error)

	// FetchResource fetches one exam. An empty label is replaced by the
	// synthetic label of resourceID.
	FetchResource(ctx context.Context, resourceID, label string) (models.FetchResult, error)

	// Logout drops the credential. Calling it twice is harmless.
	Logout()

	IsAuthenticated() bool

	// Credential returns a copy of the held credential.
	Credential() (models.Credential, bool)
}

// ValueService derives and inspects Value header tokens.
type ValueService interface {
	Derive(label string) (models.ValueToken, error)
	Analyze(value string) token.Analysis
}

// DecryptService runs blobs through the cipher trial engine.
type DecryptService interface {
	// Decrypt returns the recovered plaintext; ok is false when the battery
	// was exhausted.
	Decrypt(blob string) (plaintext models.RecoveredPlaintext, ok bool)

	// Hypotheses lists the hypotheses in trial order.
	Hypotheses() []string
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
