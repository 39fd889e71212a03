// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is an account record.
//
// PasswordHash and KDFSalt both originate from the same master password but
// are cryptographically independent: the hash only authenticates logins,
// while the salt only feeds client-side key derivation. Neither can be
// computed from the other.
type User struct {
	// ID is the internal unique identifier (UUIDv7).
	ID string `json:"id"`

	// Email is the unique login, stored lower-cased and trimmed.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the master password. It is never
	// exposed outside the server.
	PasswordHash string `json:"-"`

	// KDFSalt is the random per-user key derivation salt. It is generated once
	// at registration and never changes. It is not a secret.
	KDFSalt []byte `json:"kdfSalt"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public part of u that a signed-in client may see.
func (u User) Identity() UserIdentity {
	return UserIdentity{
		ID:      u.ID,
		Email:   u.Email,
		KDFSalt: u.KDFSalt,
	}
}

// Credentials is the register/login request body.
// Password is the plaintext master password and must never be logged.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserIdentity is what /api/auth/me returns for a valid session.
type UserIdentity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	KDFSalt []byte `json:"kdfSalt"`
}
