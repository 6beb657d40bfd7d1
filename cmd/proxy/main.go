package main

import (
	"os"

	"github.com/MKhiriev/go-bluebook/internal/adapter"
	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/handler"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/server"
	"github.com/MKhiriev/go-bluebook/internal/service"
	"github.com/MKhiriev/go-bluebook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("bluebook-proxy")
	cfg, err := config.GetProxyConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.Known() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("received configs")

	transport, err := adapter.NewUpstreamTransport(cfg.Upstream, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream transport")
	}

	services, err := service.NewServices(transport, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
