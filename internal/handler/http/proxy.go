// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bluebook/internal/app"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/models"
)

// proxy forwards a [models.ProxyRequest] to the Bluebook API.
//
// The reply mirrors the upstream: 200 with {data, status, statusText,
// headers} on 2xx, the upstream status with an "API Error" envelope
// otherwise, and 500 {"error"} when the upstream could not be reached.
func (h *Handler) proxy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProxyRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("invalid proxy envelope")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.requests.Validate(r.Context(), req); err != nil {
		log.Debug().Err(err).Msg("rejected proxy envelope")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	resp, err := h.services.Transport.Do(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("endpoint", req.Endpoint).Msg("proxy request failed")
		utils.WriteError(w, errorMessage(err), statusFromError(err))
		return
	}

	log.Info().
		Str("endpoint", req.Endpoint).
		Str("method", req.Method).
		Int("upstream_status", resp.Status).
		Int("data_length", len(resp.Data)).
		Msg("proxied")

	if !resp.IsSuccess() {
		if resp.Error == "" {
			resp.Error = fmt.Sprintf(app.MsgAPIErrorFormat, resp.Status, resp.StatusText)
		}
		_, _ = utils.WriteJSON(w, resp, resp.Status)
		return
	}

	resp.Error = ""
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}

func errorMessage(err error) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return app.MsgUnknownError
}
