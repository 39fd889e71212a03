// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the vault server.
//
// [ServerAdapter] decouples the client session from the HTTP API. Only
// ciphertext, nonces and plaintext tags ever pass through it; the adapter
// has no access to the derived key.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vault server.
type ServerAdapter interface {
	// SetToken stores the session token attached to subsequent requests.
	SetToken(token string)

	// Token returns the stored session token, or "" when signed out.
	Token() string

	// Register creates an account. On success the returned session token is
	// stored.
	Register(ctx context.Context, creds models.Credentials) error

	// Login authenticates and returns the account's KDF salt. On success the
	// returned session token is stored.
	Login(ctx context.Context, creds models.Credentials) ([]byte, error)

	// Logout ends the server session and forgets the stored token.
	Logout(ctx context.Context) error

	// Me returns the identity bound to the stored token, or nil when the
	// token is missing or no longer valid.
	Me(ctx context.Context) (*models.UserIdentity, error)

	// ListItems returns the caller's items, optionally restricted to a tag.
	ListItems(ctx context.Context, tag string) ([]models.VaultItem, error)

	// CreateItem stores a new encrypted item and returns its server ID.
	CreateItem(ctx context.Context, item models.VaultItem) (string, error)

	// UpdateItem applies a partial update to one item.
	UpdateItem(ctx context.Context, update models.VaultItemUpdate) error

	// DeleteItem permanently removes one item.
	DeleteItem(ctx context.Context, id string) error

	// Version returns the server's build version string.
	Version(ctx context.Context) (string, error)
}
