package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bluebook/internal/adapter"
	"github.com/MKhiriev/go-bluebook/internal/client"
	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/service"
	"github.com/MKhiriev/go-bluebook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	showVersion := flag.Bool("version", false, "Print build info and exit")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), client.Usage(), "\nflags:\n")
		flag.PrintDefaults()
	}

	cfg, err := config.GetClientConfig()
	log := logger.NewCLILogger("bluebook", *verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if *showVersion {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	var transport adapter.Transport
	if cfg.ViaProxy() {
		transport, err = adapter.NewProxyTransport(cfg.Adapter, log)
	} else {
		transport, err = adapter.NewUpstreamTransport(cfg.Upstream, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("create transport")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	services := service.NewClientServices(transport, cfg.App, log)
	app := client.NewApp(services, cfg, os.Stdin, os.Stdout, log)

	if err = app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, err)
			fmt.Fprint(os.Stderr, client.Usage())
			stop()
			os.Exit(2)
		}
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}
