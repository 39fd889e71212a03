// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrPasswordMismatch = errors.New("master passwords do not match")
	ErrEmptyEmail       = errors.New("email is required")
	ErrNothingToUpdate  = errors.New("nothing to update")
	ErrNoClasses        = errors.New("at least one character class must stay enabled")
)
