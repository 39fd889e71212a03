// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single login failure. It never says
	// whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUnauthorized is returned when a call has no verified identity, or
	// the session token cannot be verified.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when an item does not exist for the caller.
	// Items of other users are reported the same way.
	ErrNotFound = errors.New("not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
)
