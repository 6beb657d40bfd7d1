package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated, please login first")
	ErrForbidden        = errors.New("forbidden")
	ErrRequestFailed    = errors.New("request failed")

	ErrEmptyResourceID       = errors.New("resource id is empty")
	ErrEmptyIdentity         = errors.New("identity and secret are required")
	ErrMalformedLoginReply   = errors.New("login response carries no access token")
	ErrUnexpectedResponse    = errors.New("unexpected response body")
	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// RequestFailedError carries the upstream status of a failed call.
// It matches [ErrRequestFailed] with errors.Is. Status is zero when the call
// never got an answer; Err then holds the transport failure.
type RequestFailedError struct {
	Status     int
	StatusText string
	Err        error
}

func (e *RequestFailedError) Error() string {
	if e.Status == 0 && e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrRequestFailed, e.Err)
	}
	return fmt.Sprintf("%s: %d %s", ErrRequestFailed, e.Status, e.StatusText)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}
