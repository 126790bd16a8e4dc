package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/handler"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/internal/server"
	"github.com/MKhiriev/go-coach-notes/internal/service"
	"github.com/MKhiriev/go-coach-notes/internal/store"
	"github.com/MKhiriev/go-coach-notes/internal/workers"
	"github.com/MKhiriev/go-coach-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("coach-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	startup := workers.NewWorkers(
		workers.NewIndexRebuildWorker(storages.NoteRepository, services.SearchIndex, log),
	)
	if err = startup.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running startup workers")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
