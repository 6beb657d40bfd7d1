package service

import (
	"github.com/MKhiriev/go-bluebook/internal/adapter"
	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/recovery"
	"github.com/MKhiriev/go-bluebook/internal/token"
)

// Services bundles what the proxy handlers need.
type Services struct {
	Transport      adapter.Transport
	ValueService   ValueService
	DecryptService DecryptService
	AppInfoService AppInfoService
}

func NewServices(transport adapter.Transport, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	keys := cfg.KeyMaterial()
	return &Services{
		Transport:      transport,
		ValueService:   NewValueService(token.NewDeriver(keys), cfg.UseFallbackToken, logger),
		DecryptService: NewDecryptService(recovery.NewEngine(keys), logger),
		AppInfoService: appInfo,
	}, nil
}

// ClientServices bundles what the CLI needs.
type ClientServices struct {
	Client         APIClient
	ValueService   ValueService
	DecryptService DecryptService
}

func NewClientServices(transport adapter.Transport, cfg config.App, logger *logger.Logger) *ClientServices {
	keys := cfg.KeyMaterial()
	deriver := token.NewDeriver(keys)
	engine := recovery.NewEngine(keys)

	return &ClientServices{
		Client:         NewBluebookClient(transport, deriver, engine, cfg, logger),
		ValueService:   NewValueService(deriver, cfg.UseFallbackToken, logger),
		DecryptService: NewDecryptService(engine, logger),
	}
}
