// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the server-side business logic of the vault:
// account registration and login, session tokens and the owner-scoped vault
// operations behind the access-control gate.
//
// The server only ever handles ciphertext. No function in this package can
// decrypt a vault field.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// AuthService registers and authenticates accounts.
type AuthService interface {
	// Register creates an account with a fresh KDF salt and returns it.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies creds. Unknown email and wrong password both yield
	// [ErrInvalidCredentials].
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Identity returns the public identity of userID, or [ErrUnauthorized]
	// if the account no longer exists.
	Identity(ctx context.Context, userID string) (models.UserIdentity, error)
}

// SessionService issues and verifies session tokens.
type SessionService interface {
	// Issue returns a signed token whose subject is userID.
	Issue(ctx context.Context, userID string) (models.Token, error)

	// Verify returns the user ID carried by a valid token, or
	// [ErrUnauthorized] for any invalid, expired or foreign token.
	Verify(ctx context.Context, token string) (string, error)

	// TTL is the lifetime of issued tokens.
	TTL() time.Duration
}

// VaultService performs the owner-scoped vault operations.
//
// The owner always comes from the verified identity in ctx once the service
// is wrapped by the gate; whatever the caller put in OwnerID is overwritten.
type VaultService interface {
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error)
	Update(ctx context.Context, update models.VaultItemUpdate) error
	Delete(ctx context.Context, req models.DeleteRequest) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behaviour such as
// access control or validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
