// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be 8 to 128 characters long")

	ErrInvalidOwnerID    = errors.New("invalid owner ID")
	ErrInvalidItemID     = errors.New("invalid item ID")
	ErrInvalidNonce      = errors.New("nonce must be exactly 12 bytes")
	ErrInvalidCiphertext = errors.New("ciphertext must be between 16 bytes and 64 KiB")
	ErrTooManyTags       = errors.New("too many tags")
	ErrInvalidTag        = errors.New("tag must be 1 to 64 characters long")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
)
