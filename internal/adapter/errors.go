package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyEndpoint     = errors.New("endpoint is required")
	ErrInvalidEndpoint   = errors.New("endpoint must be an absolute path")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrForbidden         = errors.New("forbidden")
	ErrRequestFailed     = errors.New("request failed")
	ErrMalformedResponse = errors.New("malformed proxy response")
)

// StatusError describes a non-2xx upstream answer other than 401/403.
// It matches [ErrRequestFailed] with errors.Is.
type StatusError struct {
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", ErrRequestFailed, e.Status, e.StatusText)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrRequestFailed
}
