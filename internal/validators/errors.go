package validators

import (
	"errors"

	"github.com/MKhiriev/go-bluebook/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEndpointRequired = errors.New(app.MsgEndpointRequired)
	ErrInvalidMethod    = errors.New("invalid method")
	ErrInvalidHeader    = errors.New("invalid header")
)
