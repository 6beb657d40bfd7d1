// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transports the API client uses to reach the
// Bluebook API.
//
// The primary abstraction is [Transport]: "send this proxy envelope, give me
// status, headers and body back". Two implementations ship with the package:
//   - [NewUpstreamTransport] calls the Bluebook API directly, presenting the
//     browser header profile the web client uses;
//   - [NewProxyTransport] forwards the envelope to a running go-bluebook
//     proxy (POST /api/bluebook).
//
// A Transport only fails for transport-level problems. Upstream HTTP
// statuses travel in [models.ProxyResponse] and are classified by
// [CheckStatus].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-bluebook/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport sends one request to the Bluebook API.
type Transport interface {
	// Do performs req and returns the upstream response. The returned error
	// is non-nil only when no upstream response was obtained.
	Do(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error)
}
