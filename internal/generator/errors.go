// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import "errors"

var (
	// ErrEmptyPool is returned when no character class is selected or when
	// ambiguity filtering removes every candidate character.
	ErrEmptyPool = errors.New("empty character pool")

	// ErrInvalidLength is returned for a length below 1 or above [MaxLength].
	ErrInvalidLength = errors.New("invalid secret length")
)
