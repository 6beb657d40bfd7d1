package config

import "fmt"

// ProxyConfig is the view of [StructuredConfig] used by the proxy server.
type ProxyConfig struct {
	App      App
	Upstream Upstream
	Server   Server
}

// ClientConfig is the view of [StructuredConfig] used by the CLI client.
type ClientConfig struct {
	App      App
	Auth     Auth
	Upstream Upstream
	Adapter  Adapter
	Workers  Workers
}

// GetProxyConfig builds and validates the proxy view of the merged config.
func GetProxyConfig() (*ProxyConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ProxyConfig(), nil
}

// GetClientConfig builds and validates the client view of the merged config.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return cfg.ClientConfig(), nil
}

// ProxyConfig projects cfg onto the proxy view.
func (cfg *StructuredConfig) ProxyConfig() *ProxyConfig {
	return &ProxyConfig{App: cfg.App, Upstream: cfg.Upstream, Server: cfg.Server}
}

// ClientConfig projects cfg onto the client view.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App:      cfg.App,
		Auth:     cfg.Auth,
		Upstream: cfg.Upstream,
		Adapter:  cfg.Adapter,
		Workers:  cfg.Workers,
	}
}

// ViaProxy reports whether the client should send requests through a proxy.
func (c *ClientConfig) ViaProxy() bool {
	return c.Adapter.HTTPAddress != ""
}
