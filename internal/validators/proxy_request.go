package validators

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-bluebook/models"
)

const (
	FieldEndpoint = "endpoint"
	FieldMethod   = "method"
	FieldHeaders  = "headers"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodHead,
	http.MethodOptions,
}

type ProxyRequestValidator struct{}

func NewProxyRequestValidator() Validator {
	return &ProxyRequestValidator{}
}

func (v *ProxyRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProxyRequest:
		return v.validateProxyRequest(ctx, value, fields...)
	case *models.ProxyRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateProxyRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProxyRequestValidator) validateProxyRequest(_ context.Context, req models.ProxyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEndpoint, FieldMethod, FieldHeaders}
	}

	for _, f := range fields {
		switch f {
		case FieldEndpoint:
			if strings.TrimSpace(req.Endpoint) == "" {
				return ErrEndpointRequired
			}
		case FieldMethod:
			// empty means GET
			if req.Method != "" && !isAllowedMethod(req.Method) {
				return fmt.Errorf("%w: %q", ErrInvalidMethod, req.Method)
			}
		case FieldHeaders:
			for name, value := range req.Headers {
				if !isValidHeaderName(name) || strings.ContainsAny(value, "\r\n") {
					return fmt.Errorf("%w: %q", ErrInvalidHeader, name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isAllowedMethod(method string) bool {
	for _, m := range allowedMethods {
		if strings.EqualFold(method, m) {
			return true
		}
	}
	return false
}

// isValidHeaderName accepts RFC 7230 token characters only.
func isValidHeaderName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("!#$%&'*+-.^_`|~", r):
		default:
			return false
		}
	}
	return true
}
