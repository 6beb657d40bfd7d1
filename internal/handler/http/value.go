package http

import (
	"net/http"

	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/utils"
)

type deriveValueRequest struct {
	Label string `json:"label"`
}

type analyzeValueRequest struct {
	Value string `json:"value"`
}

func (h *Handler) deriveValue(w http.ResponseWriter, r *http.Request) {
	var req deriveValueRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	value, err := h.services.ValueService.Derive(req.Label)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("value derivation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, value, http.StatusOK)
}

func (h *Handler) analyzeValue(w http.ResponseWriter, r *http.Request) {
	var req analyzeValueRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.ValueService.Analyze(req.Value), http.StatusOK)
}
