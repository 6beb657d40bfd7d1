package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bluebook/internal/adapter"
	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEndpointRequired: http.StatusBadRequest,
	validators.ErrInvalidMethod:    http.StatusBadRequest,
	validators.ErrInvalidHeader:    http.StatusBadRequest,
	adapter.ErrEmptyEndpoint:       http.StatusBadRequest,
	adapter.ErrInvalidEndpoint:     http.StatusBadRequest,
	utils.ErrEmptyBody:             http.StatusBadRequest,

	token.ErrDerivationFailed: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
