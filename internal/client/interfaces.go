// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Vault is the client-side view of a password vault as used by vaultctl.
type Vault interface {
	// Register creates an account and leaves the session unlocked.
	Register(ctx context.Context, email, masterPassword string) error

	// Unlock signs in and derives the vault key.
	Unlock(ctx context.Context, email, masterPassword string) error

	// Lock destroys the in-memory key. The server session is kept.
	Lock()

	// Logout locks and ends the server session.
	Logout(ctx context.Context) error

	Unlocked() bool
	LastActivity() time.Time

	Whoami(ctx context.Context) (*models.UserIdentity, error)

	AddItem(ctx context.Context, in ItemInput) (string, error)
	ListItems(ctx context.Context, tag string) ([]Item, error)
	UpdateItem(ctx context.Context, id string, patch ItemPatch) error
	DeleteItem(ctx context.Context, id string) error

	Generate(p generator.Policy) (string, error)
}
