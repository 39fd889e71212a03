// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	VaultService   VaultService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The vault service is composed as
// gate → validation → core, so identity is checked before anything else.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	ids := utils.NewUUIDGenerator()

	authService, err := NewAuthService(storages.UserRepository, ids, cfg.App, m, logger)
	if err != nil {
		return nil, fmt.Errorf("creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("creating app info service: %w", err)
	}

	vault := NewVaultService(storages.VaultRepository, ids, m, logger)
	vault = NewVaultValidationService().Wrap(vault)
	vault = NewVaultGate(m).Wrap(vault)

	return &Services{
		AuthService:    authService,
		SessionService: NewSessionService(cfg.App, logger),
		VaultService:   vault,
		AppInfoService: appInfoService,
	}, nil
}
