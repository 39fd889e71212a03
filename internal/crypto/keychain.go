// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	deriver *Deriver
	cipher  *FieldCipher
}

// NewKeyChainService constructs a [KeyChainService] that derives keys with
// the given PBKDF2 iteration count and allows at most concurrency parallel
// derivations.
func NewKeyChainService(iterations int, concurrency int64) KeyChainService {
	return &keyChainService{
		deriver: NewDeriver(iterations, concurrency),
		cipher:  NewFieldCipher(),
	}
}

func (k *keyChainService) DeriveKey(ctx context.Context, masterPassword string, salt []byte) (*DerivedKey, error) {
	return k.deriver.Derive(ctx, masterPassword, salt)
}

func (k *keyChainService) EncryptField(key *DerivedKey, plaintext string) (models.EncryptedField, error) {
	return k.cipher.EncryptString(key, plaintext)
}

func (k *keyChainService) DecryptField(key *DerivedKey, field models.EncryptedField) (string, error) {
	return k.cipher.DecryptString(key, field)
}
