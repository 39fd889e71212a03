// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/handler"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/server"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

const dbConnectTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "dev" && buildVersion != "N/A" {
		cfg.App.Version = buildVersion
	}

	storages, closeStorage, err := newStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer closeStorage()

	m := metrics.NewMetrics()

	services, err := service.NewServices(storages, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newStorages connects to PostgreSQL and applies migrations when a DSN is
// configured, and falls back to the in-memory store otherwise.
func newStorages(cfg config.Storage, log *logger.Logger) (*store.Storages, func(), error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database configured, using in-memory store")
		return store.NewMemoryStorages(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("error applying migrations: %w", err)
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}
	return store.NewPostgresStorages(db, log), closeDB, nil
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
