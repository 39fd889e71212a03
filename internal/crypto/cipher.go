// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// NonceSize is the length of a GCM nonce (96 bits).
	NonceSize = 12

	// TagSize is the length of the GCM authentication tag appended to every
	// ciphertext.
	TagSize = 16
)

// FieldCipher seals and opens individual vault fields with AES-256-GCM.
//
// Every call to Encrypt draws a fresh nonce from the configured random
// source, so encrypting the same plaintext twice yields unrelated outputs.
// A FieldCipher is stateless apart from the random source and is safe for
// concurrent use.
type FieldCipher struct {
	random io.Reader
}

// NewFieldCipher returns a FieldCipher that draws nonces from crypto/rand.
func NewFieldCipher() *FieldCipher {
	return &FieldCipher{random: rand.Reader}
}

// Encrypt seals plaintext under key. The plaintext may be empty; the
// resulting ciphertext is then exactly [TagSize] bytes long.
func (c *FieldCipher) Encrypt(key *DerivedKey, plaintext []byte) (models.EncryptedField, error) {
	if key.Destroyed() {
		return models.EncryptedField{}, ErrInvalidKey
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return models.EncryptedField{}, fmt.Errorf("reading nonce: %w", err)
	}

	var (
		sealed []byte
		err    error
	)
	key.withMaterial(func(material []byte) {
		var gcm cipher.AEAD
		gcm, err = newGCM(material)
		if err != nil {
			return
		}
		sealed = gcm.Seal(nil, nonce, plaintext, nil)
	})
	if err != nil {
		return models.EncryptedField{}, err
	}

	return models.EncryptedField{Nonce: nonce, Ciphertext: sealed}, nil
}

// Decrypt opens a field sealed by Encrypt.
//
// Any failure to authenticate (wrong key, modified nonce or ciphertext,
// truncated input) returns [ErrAuthenticationFailure] and no partial
// plaintext.
func (c *FieldCipher) Decrypt(key *DerivedKey, field models.EncryptedField) ([]byte, error) {
	if key.Destroyed() {
		return nil, ErrInvalidKey
	}
	if len(field.Nonce) != NonceSize || len(field.Ciphertext) < TagSize {
		return nil, ErrAuthenticationFailure
	}

	var (
		plaintext []byte
		err       error
	)
	key.withMaterial(func(material []byte) {
		var gcm cipher.AEAD
		gcm, err = newGCM(material)
		if err != nil {
			return
		}
		plaintext, err = gcm.Open(nil, field.Nonce, field.Ciphertext, nil)
		if err != nil {
			err = ErrAuthenticationFailure
		}
	})
	if err != nil {
		return nil, err
	}

	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

// EncryptString is Encrypt for UTF-8 text.
func (c *FieldCipher) EncryptString(key *DerivedKey, plaintext string) (models.EncryptedField, error) {
	return c.Encrypt(key, []byte(plaintext))
}

// DecryptString is Decrypt for UTF-8 text.
func (c *FieldCipher) DecryptString(key *DerivedKey, field models.EncryptedField) (string, error) {
	plaintext, err := c.Decrypt(key, field)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func newGCM(material []byte) (cipher.AEAD, error) {
	if len(material) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(material)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return cipher.NewGCM(block)
}
