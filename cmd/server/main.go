// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-notes/internal/adapter"
	"github.com/MKhiriev/secure-notes/internal/config"
	"github.com/MKhiriev/secure-notes/internal/handler"
	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/server"
	"github.com/MKhiriev/secure-notes/internal/service"
	"github.com/MKhiriev/secure-notes/internal/store"
	"github.com/MKhiriev/secure-notes/internal/validators"
	"github.com/MKhiriev/secure-notes/internal/workers"
	"github.com/MKhiriev/secure-notes/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("secure-notes-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("secure-notes-server", cfg.App.LogLevel)
	ctx := log.WithContext(context.Background())

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Dialect()); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	var gateway adapter.GatewayClient
	if cfg.Payment.ConfirmWithGateway {
		if gateway, err = adapter.NewEsewaClient(cfg.Payment, log); err != nil {
			log.Fatal().Err(err).Msg("error creating payment gateway client")
		}
	}

	services, err := service.NewServices(storages, gateway, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
