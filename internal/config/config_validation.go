// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.KeyMaterial().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if strings.Count(cfg.App.ResourceLabelFormat, "%s") != 1 || strings.Count(cfg.App.ResourceLabelFormat, "%") != 1 {
		return fmt.Errorf("%w: resource label format %q needs exactly one %%s", ErrInvalidAppConfigs, cfg.App.ResourceLabelFormat)
	}

	if err := validateBaseURL(cfg.Upstream.BaseURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUpstreamConfigs, err)
	}
	if cfg.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidUpstreamConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.HTTPAddress != "" {
		if err := validateBaseURL(cfg.Adapter.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
		}
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.FetchConcurrency < 1 {
		return fmt.Errorf("%w: fetch concurrency must be at least 1", ErrInvalidWorkerConfigs)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme in %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
