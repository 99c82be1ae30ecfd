package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-photo-gate/internal/adapter"
	"github.com/MKhiriev/go-photo-gate/internal/config"
	"github.com/MKhiriev/go-photo-gate/internal/handler"
	"github.com/MKhiriev/go-photo-gate/internal/intake"
	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/MKhiriev/go-photo-gate/internal/metrics"
	"github.com/MKhiriev/go-photo-gate/internal/server"
	"github.com/MKhiriev/go-photo-gate/internal/service"
	"github.com/MKhiriev/go-photo-gate/internal/store"
	"github.com/MKhiriev/go-photo-gate/internal/workers"
	"github.com/MKhiriev/go-photo-gate/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("photo-gate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	classifier, err := adapter.NewClassifierAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating classifier adapter")
	}
	defer classifier.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	localIntake := intake.NewLocalIntake(storages.PhotoFileStorage, storages.SubmissionRepository, storages.MediaRepository,
		cfg.Uploads.MaxDescriptionLength, log)

	services, err := service.NewServices(storages, localIntake, classifier, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(ctx, handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var health workers.StatusRefresher
	if handlers.GRPC != nil {
		health = handlers.GRPC
	}
	background := workers.NewWorkers(services.Reasons, health, cfg.Workers, m, log)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		background.Run(ctx)
	}()

	srv.RunServer(ctx)
	wg.Wait()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
