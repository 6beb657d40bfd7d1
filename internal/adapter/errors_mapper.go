package adapter

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bluebook/models"
)

// CheckStatus classifies an upstream response: nil for 2xx, [ErrForbidden]
// for 401 and 403, a *[StatusError] otherwise.
func CheckStatus(resp models.ProxyResponse) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %d %s", ErrForbidden, resp.Status, statusText(resp))
	default:
		return &StatusError{Status: resp.Status, StatusText: statusText(resp)}
	}
}

func statusText(resp models.ProxyResponse) string {
	if resp.StatusText != "" {
		return resp.StatusText
	}
	return http.StatusText(resp.Status)
}
