package config

import (
	"time"

	"github.com/MKhiriev/go-bluebook/internal/crypto"
)

const (
	DefaultListingLabel        = "date_location_sets"
	DefaultResourceLabelFormat = "getexam/%s"
	DefaultUpstreamBaseURL     = "https://api-prod.bluebook.plus"
	DefaultUserAgent           = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:144.0) Gecko/20100101 Firefox/144.0"
	DefaultOrigin              = "https://bluebook.plus"
	DefaultReferer             = "https://bluebook.plus/"
	DefaultServerAddress       = "localhost:8080"
	DefaultVersion             = "dev"
	DefaultFetchConcurrency    = 4
	DefaultRequestTimeout      = 30 * time.Second
	DefaultShutdownTimeout     = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KeyA:                crypto.DefaultKeyA,
			KeyB:                crypto.DefaultKeyB,
			ListingLabel:        DefaultListingLabel,
			ResourceLabelFormat: DefaultResourceLabelFormat,
			Version:             DefaultVersion,
		},
		Upstream: Upstream{
			BaseURL:        DefaultUpstreamBaseURL,
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
			Origin:         DefaultOrigin,
			Referer:        DefaultReferer,
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			FetchConcurrency: DefaultFetchConcurrency,
		},
	}
}

// KeyMaterial returns the configured secrets.
func (a App) KeyMaterial() crypto.KeyMaterial {
	return crypto.KeyMaterial{KeyA: a.KeyA, KeyB: a.KeyB}
}
