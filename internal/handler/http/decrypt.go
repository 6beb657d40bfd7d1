package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/utils"
)

type decryptRequest struct {
	// Data is usually a JSON string holding the blob. Any other JSON value
	// is tried as its raw text.
	Data json.RawMessage `json:"data"`
}

type decryptResponse struct {
	Recovered  bool            `json:"recovered"`
	Hypothesis string          `json:"hypothesis,omitempty"`
	Text       string          `json:"text,omitempty"`
	Structured json.RawMessage `json:"structured,omitempty"`
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	var req decryptRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	blob := string(req.Data)
	var s string
	if err := json.Unmarshal(req.Data, &s); err == nil {
		blob = s
	}

	plain, ok := h.services.DecryptService.Decrypt(blob)
	logger.FromRequest(r).Debug().
		Bool("recovered", ok).
		Str("hypothesis", plain.Hypothesis).
		Int("blob_length", len(blob)).
		Msg("decrypt")

	_, _ = utils.WriteJSON(w, decryptResponse{
		Recovered:  ok,
		Hypothesis: plain.Hypothesis,
		Text:       plain.Text,
		Structured: plain.Structured,
	}, http.StatusOK)
}

func (h *Handler) listHypotheses(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, map[string][]string{
		"hypotheses": h.services.DecryptService.Hypotheses(),
	}, http.StatusOK)
}
