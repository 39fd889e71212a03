// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrLocked is returned by operations that need the vault key while the
	// session holds none, either before Unlock or after Lock.
	ErrLocked = errors.New("vault is locked")

	// ErrMissingSalt is returned when the server identity carries no KDF
	// salt to derive a key from.
	ErrMissingSalt = errors.New("account has no kdf salt")
)
