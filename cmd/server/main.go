package main

import (
	"context"
	"fmt"

	"github.com/YOKO3227/Webtoon/internal/config"
	"github.com/YOKO3227/Webtoon/internal/handler"
	"github.com/YOKO3227/Webtoon/internal/logger"
	"github.com/YOKO3227/Webtoon/internal/server"
	"github.com/YOKO3227/Webtoon/internal/service"
	"github.com/YOKO3227/Webtoon/internal/store"
	"github.com/YOKO3227/Webtoon/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("overlay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	buckets, err := store.NewBuckets(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening buckets")
	}
	defer func() {
		if err := buckets.Close(); err != nil {
			log.Err(err).Msg("error closing buckets")
		}
	}()

	services, err := service.NewServices(buckets, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())

	return info
}
