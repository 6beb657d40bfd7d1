// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-bluebook proxy handlers, transports and CLI.
//
// The Msg* constants are written into HTTP response bodies. Clients of the
// proxy match on some of them, so their wording is part of the contract.
package app

const (
	// MsgEndpointRequired is returned when a proxy envelope has no endpoint.
	MsgEndpointRequired = "Endpoint is required"

	// MsgAPIErrorFormat formats the error of a non-2xx upstream answer from
	// the status code and reason phrase.
	MsgAPIErrorFormat = "API Error: %d %s"

	// MsgUnknownError is used when a failure carries no message.
	MsgUnknownError = "Unknown error"
)
