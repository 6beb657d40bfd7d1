package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bluebook/internal/app"
	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/models"
	"github.com/go-resty/resty/v2"
)

type upstreamTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewUpstreamTransport returns a [Transport] that calls the Bluebook API at
// cfg.BaseURL directly.
//
// Every request carries the browser header profile built from cfg; headers
// of the envelope override it key by key.
func NewUpstreamTransport(cfg config.Upstream, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	client := utils.NewHTTPClientWithBase(baseURL, cfg.RequestTimeout, browserHeaders(cfg))

	return &upstreamTransport{client: client, logger: log}, nil
}

// browserHeaders mirrors what Firefox sends from bluebook.plus.
// Accept-Encoding, Connection and TE are left to net/http so that gzip
// bodies are decompressed transparently.
func browserHeaders(cfg config.Upstream) map[string]string {
	return map[string]string{
		"User-Agent":      cfg.UserAgent,
		"Accept":          "*/*",
		"Accept-Language": "en-US,en;q=0.5",
		"Referer":         cfg.Referer,
		"Origin":          cfg.Origin,
		"Sec-GPC":         "1",
		"Sec-Fetch-Dest":  "empty",
		"Sec-Fetch-Mode":  "cors",
		"Sec-Fetch-Site":  "same-site",
		"Priority":        "u=0",
		"Content-Type":    "application/json",
	}
}

// Do implements [Transport].
func (u *upstreamTransport) Do(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
	if err := validateEndpoint(req.Endpoint); err != nil {
		return models.ProxyResponse{}, err
	}

	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	r := u.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers)
	if req.Data != nil && method != http.MethodGet {
		r.SetBody(req.Data)
	}

	resp, err := r.Execute(method, req.Endpoint)
	if err != nil {
		return models.ProxyResponse{}, fmt.Errorf("upstream %s %s: %w", method, req.Endpoint, err)
	}

	u.logger.Debug().
		Str("method", method).
		Str("endpoint", req.Endpoint).
		Int("status", resp.StatusCode()).
		Int("body_length", len(resp.Body())).
		Msg("upstream response")

	return toProxyResponse(resp)
}

// validateEndpoint accepts only paths on the upstream host.
func validateEndpoint(endpoint string) error {
	switch {
	case strings.TrimSpace(endpoint) == "":
		return ErrEmptyEndpoint
	case !strings.HasPrefix(endpoint, "/"), strings.HasPrefix(endpoint, "//"):
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}
	return nil
}

func toProxyResponse(resp *resty.Response) (models.ProxyResponse, error) {
	data, err := bodyAsJSON(resp.Body())
	if err != nil {
		return models.ProxyResponse{}, err
	}

	out := models.ProxyResponse{
		Data:       data,
		Status:     resp.StatusCode(),
		StatusText: reasonPhrase(resp),
		Headers:    flattenHeaders(resp.Header()),
	}
	if !out.IsSuccess() {
		out.Error = fmt.Sprintf(app.MsgAPIErrorFormat, out.Status, out.StatusText)
	}
	return out, nil
}

// bodyAsJSON returns body unchanged when it is a JSON document, otherwise
// the body encoded as a JSON string.
func bodyAsJSON(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		return json.RawMessage(trimmed), nil
	}

	encoded, err := json.Marshal(string(body))
	if err != nil {
		return nil, fmt.Errorf("encode upstream body: %w", err)
	}
	return encoded, nil
}

// reasonPhrase extracts "Not Found" from "404 Not Found".
func reasonPhrase(resp *resty.Response) string {
	text := strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode()))
	if text = strings.TrimSpace(text); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode())
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return out
}
