package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-bot/internal/client"
	"github.com/MKhiriev/go-pass-bot/internal/logger"
	"github.com/MKhiriev/go-pass-bot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := client.ParseConfig(os.Args[1:], nil)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\n", info.BuildVersion())
		fmt.Printf("Build date: %s\n", info.BuildDate())
		fmt.Printf("Build commit: %s\n", info.BuildCommit())
		return
	}

	log := logger.NewConsoleLogger("passgen", os.Stderr)
	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	source, err := client.NewSource(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password source")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(source, os.Stdout, log).Run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("passgen failed")
		stop()
		os.Exit(1)
	}
}
