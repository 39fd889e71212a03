// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService bundles the client-side key lifecycle: deriving the vault
// key from the master password and sealing or opening individual fields.
//
// The server never holds an implementation of this interface.
type KeyChainService interface {
	// DeriveKey re-derives the vault key for the given account salt. It blocks
	// for the whole PBKDF2 computation unless ctx is cancelled first.
	DeriveKey(ctx context.Context, masterPassword string, salt []byte) (*DerivedKey, error)

	// EncryptField seals one plaintext field under key.
	EncryptField(key *DerivedKey, plaintext string) (models.EncryptedField, error)

	// DecryptField opens one field. It returns [ErrAuthenticationFailure] on
	// any authentication problem.
	DecryptField(key *DerivedKey, field models.EncryptedField) (string, error)
}
