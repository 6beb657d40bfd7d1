package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		KeyA                string `json:"key_a"`
		KeyB                string `json:"key_b"`
		ListingLabel        string `json:"listing_label"`
		ResourceLabelFormat string `json:"resource_label_format"`
		UseFallbackToken    bool   `json:"use_fallback_token"`
		Version             string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Upstream struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		UserAgent      string   `json:"user_agent"`
		Origin         string   `json:"origin"`
		Referer        string   `json:"referer"`
	} `json:"upstream,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		FetchConcurrency int `json:"fetch_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			KeyA:                jsonCfg.App.KeyA,
			KeyB:                jsonCfg.App.KeyB,
			ListingLabel:        jsonCfg.App.ListingLabel,
			ResourceLabelFormat: jsonCfg.App.ResourceLabelFormat,
			UseFallbackToken:    jsonCfg.App.UseFallbackToken,
			Version:             jsonCfg.App.Version,
		},
		Auth: Auth{
			Email:    jsonCfg.Auth.Email,
			Password: jsonCfg.Auth.Password,
		},
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
			UserAgent:      jsonCfg.Upstream.UserAgent,
			Origin:         jsonCfg.Upstream.Origin,
			Referer:        jsonCfg.Upstream.Referer,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			FetchConcurrency: jsonCfg.Workers.FetchConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
