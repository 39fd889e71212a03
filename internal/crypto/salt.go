// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// SaltSize is the length of a freshly generated KDF salt.
const SaltSize = MinSaltSize

// NewSalt reads [SaltSize] bytes from the OS CSPRNG. It is called once per
// account, at registration.
func NewSalt() ([]byte, error) {
	return newSalt(rand.Reader)
}

func newSalt(random io.Reader) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}
