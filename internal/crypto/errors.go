// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidInput is returned when key derivation receives an empty
	// password, a missing or too short salt, or an iteration count below
	// [MinIterations]. It is a pre-check failure, not a cryptographic one.
	ErrInvalidInput = errors.New("invalid key derivation input")

	// ErrAuthenticationFailure is returned by decryption whenever the GCM tag
	// does not verify. It deliberately carries no detail: a wrong key, a
	// tampered ciphertext, a truncated blob and a corrupted nonce all look
	// the same to the caller.
	ErrAuthenticationFailure = errors.New("cannot decrypt field")

	// ErrInvalidKey is returned when a nil, destroyed or wrongly sized key is
	// used for encryption or decryption.
	ErrInvalidKey = errors.New("invalid or destroyed key")
)
