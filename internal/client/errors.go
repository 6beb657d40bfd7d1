package client

import "errors"

var (
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("missing argument")
	ErrMissingCredentials = errors.New("AUTH_EMAIL and AUTH_PASSWORD (or -email and -password) are required")
	ErrNotRecovered       = errors.New("no hypothesis recovered the blob")
)
