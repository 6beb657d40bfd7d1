// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-bluebook/internal/adapter"
	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/recovery"
	"github.com/MKhiriev/go-bluebook/internal/token"
	"github.com/MKhiriev/go-bluebook/internal/utils"
	"github.com/MKhiriev/go-bluebook/models"
)

const (
	loginEndpoint   = "/auth/login/"
	listingEndpoint = "/date_location_sets"
	examEndpoint    = "/getexam/"

	headerAuthorization = "Authorization"
	headerValue         = "Value"
)

// BluebookClient implements [APIClient] on top of an [adapter.Transport].
type BluebookClient struct {
	transport adapter.Transport
	deriver   *token.Deriver
	engine    *recovery.Engine
	cfg       config.App

	mu         sync.RWMutex
	credential *models.Credential

	logger *logger.Logger
}

var _ APIClient = (*BluebookClient)(nil)

func NewBluebookClient(transport adapter.Transport, deriver *token.Deriver, engine *recovery.Engine, cfg config.App, logger *logger.Logger) *BluebookClient {
	return &BluebookClient{
		transport: transport,
		deriver:   deriver,
		engine:    engine,
		cfg:       cfg,
		logger:    logger,
	}
}

func (c *BluebookClient) Login(ctx context.Context, identity, secret string) (models.Credential, error) {
	if identity == "" || secret == "" {
		return models.Credential{}, ErrEmptyIdentity
	}

	resp, err := c.transport.Do(ctx, models.ProxyRequest{
		Endpoint: loginEndpoint,
		Method:   http.MethodPost,
		Data:     models.LoginRequest{Email: identity, Password: secret},
	})
	if err != nil {
		return models.Credential{}, fmt.Errorf("login request: %w", transportFailure(err))
	}
	if err = mapAdapterError(adapter.CheckStatus(resp)); err != nil {
		return models.Credential{}, err
	}

	var reply models.LoginResponse
	if err = json.Unmarshal(resp.Data, &reply); err != nil {
		return models.Credential{}, fmt.Errorf("%w: login: %v", ErrUnexpectedResponse, err)
	}
	if reply.AccessToken == "" {
		return models.Credential{}, ErrMalformedLoginReply
	}

	cred := models.Credential{
		AccessToken:  reply.AccessToken,
		RefreshToken: reply.RefreshToken,
		User:         reply.User,
	}
	if claims, err := utils.ParseUnverifiedClaims(reply.AccessToken); err == nil {
		cred.RegisteredClaims = claims
	} else {
		c.logger.Debug().Err(err).Msg("access token is not a readable JWT")
	}

	c.mu.Lock()
	c.credential = &cred
	c.mu.Unlock()

	c.logger.Info().Str("user_id", cred.User.ID).Msg("logged in")
	return cred, nil
}

func (c *BluebookClient) ListResources(ctx context.Context) (models.ResourceIndex, error) {
	resp, _, err := c.authorizedGet(ctx, listingEndpoint, c.cfg.ListingLabel)
	if err != nil {
		return nil, err
	}

	// a JSON string holding the listing counts as plain JSON too
	body := resp.DataString()
	var index models.ResourceIndex
	if err = json.Unmarshal([]byte(body), &index); err == nil {
		return index, nil
	}

	// an encoded listing is recovered like an exam body
	plain, ok := c.engine.Recover(body)
	if !ok || !plain.IsStructured() {
		return nil, fmt.Errorf("%w: listing is neither JSON nor recoverable", ErrUnexpectedResponse)
	}
	if err = json.Unmarshal(plain.Structured, &index); err != nil {
		return nil, fmt.Errorf("%w: listing: %v", ErrUnexpectedResponse, err)
	}
	return index, nil
}

func (c *BluebookClient) FetchResource(ctx context.Context, resourceID, label string) (models.FetchResult, error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return models.FetchResult{}, ErrEmptyResourceID
	}
	if label == "" {
		label = fmt.Sprintf(c.cfg.ResourceLabelFormat, resourceID)
	}

	resp, fellBack, err := c.authorizedGet(ctx, examEndpoint+url.PathEscape(resourceID), label)
	if err != nil {
		return models.FetchResult{}, err
	}

	result := models.FetchResult{
		ResourceID: resourceID,
		Label:      label,
		FellBack:   fellBack,
		Raw:        resp.Data,
	}

	body := resp.DataString()
	if plain, ok := recovery.AsPlainJSON(body); ok {
		result.Plaintext = &plain
		return result, nil
	}

	if plain, ok := c.engine.Recover(body); ok {
		result.Plaintext = &plain
	} else {
		c.logger.Warn().Str("resource_id", resourceID).Msg("no hypothesis recovered the exam body")
	}
	return result, nil
}

func (c *BluebookClient) Logout() {
	c.mu.Lock()
	c.credential = nil
	c.mu.Unlock()
}

func (c *BluebookClient) IsAuthenticated() bool {
	_, ok := c.Credential()
	return ok
}

func (c *BluebookClient) Credential() (models.Credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.credential == nil {
		return models.Credential{}, false
	}
	return *c.credential, true
}

// authorizedGet sends GET endpoint with the held credential and the token of
// label. The credential is read once, so a concurrent Logout does not affect
// a request already being built.
func (c *BluebookClient) authorizedGet(ctx context.Context, endpoint, label string) (models.ProxyResponse, bool, error) {
	cred, ok := c.Credential()
	if !ok {
		return models.ProxyResponse{}, false, ErrNotAuthenticated
	}

	value, fellBack, err := c.valueFor(label)
	if err != nil {
		return models.ProxyResponse{}, false, err
	}

	resp, err := c.transport.Do(ctx, models.ProxyRequest{
		Endpoint: endpoint,
		Method:   http.MethodGet,
		Headers: map[string]string{
			headerAuthorization: cred.BearerHeader(),
			headerValue:         value,
		},
	})
	if err != nil {
		return models.ProxyResponse{}, false, fmt.Errorf("request %s: %w", endpoint, transportFailure(err))
	}
	if err = mapAdapterError(adapter.CheckStatus(resp)); err != nil {
		return models.ProxyResponse{}, false, err
	}
	return resp, fellBack, nil
}

func (c *BluebookClient) valueFor(label string) (string, bool, error) {
	if c.cfg.UseFallbackToken {
		value, fellBack := c.deriver.DeriveOrFallback(label)
		if fellBack {
			c.logger.Warn().Str("label", label).Msg("derivation failed, sending fallback token")
		}
		return value, fellBack, nil
	}

	value, err := c.deriver.Derive(label)
	if err != nil {
		return "", false, err
	}
	return value, false, nil
}
