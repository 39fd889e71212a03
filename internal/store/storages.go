// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	VaultRepository VaultRepository
}

// NewPostgresStorages wires the PostgreSQL repositories on top of db.
func NewPostgresStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		VaultRepository: NewVaultRepository(db, logger),
	}
}

// NewMemoryStorages returns repositories backed by one shared in-process
// store. Data is lost when the process exits.
func NewMemoryStorages() *Storages {
	m := NewMemoryStore()
	return &Storages{
		UserRepository:  m,
		VaultRepository: m,
	}
}
