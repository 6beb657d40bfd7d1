// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-bluebook/internal/adapter"
)

// mapAdapterError translates an adapter status error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden
	case errors.As(err, &statusErr):
		return &RequestFailedError{Status: statusErr.Status, StatusText: statusErr.StatusText}
	}

	return err
}

// transportFailure wraps an error returned by the transport itself.
func transportFailure(err error) error {
	return &RequestFailedError{StatusText: err.Error(), Err: err}
}
