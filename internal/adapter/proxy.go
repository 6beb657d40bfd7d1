package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/models"
)

const proxyRoute = "/api/bluebook"

type proxyTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewProxyTransport returns a [Transport] that forwards envelopes to the proxy
// at cfg.HTTPAddress. A missing scheme defaults to http.
func NewProxyTransport(cfg config.Adapter, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClientWithBase(baseURL, cfg.RequestTimeout, map[string]string{
		"Content-Type": "application/json",
	})

	return &proxyTransport{client: client, logger: log}, nil
}

// Do implements [Transport]. The proxy answers with the upstream status, so
// any status is decoded as an envelope.
func (p *proxyTransport) Do(ctx context.Context, req models.ProxyRequest) (models.ProxyResponse, error) {
	if err := validateEndpoint(req.Endpoint); err != nil {
		return models.ProxyResponse{}, err
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(proxyRoute)
	if err != nil {
		return models.ProxyResponse{}, fmt.Errorf("proxy request: %w", err)
	}

	var out models.ProxyResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ProxyResponse{}, fmt.Errorf("%w: %d: %v", ErrMalformedResponse, resp.StatusCode(), err)
	}

	// the proxy's own failures carry only {"error"}
	if out.Status == 0 {
		out.Status = resp.StatusCode()
		out.StatusText = reasonPhrase(resp)
	}

	p.logger.Debug().
		Str("endpoint", req.Endpoint).
		Int("status", out.Status).
		Msg("proxy response")

	return out, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}
