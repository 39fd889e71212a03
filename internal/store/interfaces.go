// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the opaque persistence layer of the vault.
//
// It stores ciphertext, nonces, plaintext tags and account records. It never
// sees plaintext vault fields and performs no cryptography. Every vault
// operation is scoped by owner: an item of another owner is
// indistinguishable from a missing one.
//
// Two implementations are provided: PostgreSQL (repository_*.go) and an
// in-process map store (storage_memory.go) used for development and tests.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists account records.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned timestamps.
	// Returns [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user with the given normalised email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the user with the given ID, or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// VaultRepository persists encrypted vault items.
type VaultRepository interface {
	// Create inserts item (ID and OwnerID already set) and returns it with
	// CreatedAt and UpdatedAt filled in.
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// List returns the owner's items ordered by UpdatedAt, newest first,
	// optionally restricted to items carrying req.Tag.
	List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error)

	// Update atomically replaces the fields present in update and bumps
	// UpdatedAt. Returns [ErrVaultItemNotFound] when the item does not exist
	// for update.OwnerID.
	Update(ctx context.Context, update models.VaultItemUpdate) error

	// Delete permanently removes one item. Returns [ErrVaultItemNotFound]
	// when the item does not exist for req.OwnerID.
	Delete(ctx context.Context, req models.DeleteRequest) error
}
