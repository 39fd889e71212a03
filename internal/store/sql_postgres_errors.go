// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraints of the users table, see migrations/00001_create_users.sql.
const (
	usersEmailConstraint   = "users_email_key"
	usersKDFSaltConstraint = "users_kdf_salt_key"
)

// postgresError returns the PostgreSQL error in err's chain, or an empty
// one when there is none.
func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return &pgconn.PgError{}
}

// classifyUserError maps driver errors of the users table to domain errors.
// Unrecognised errors are returned unchanged.
func classifyUserError(err error) error {
	pgErr := postgresError(err)
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case usersEmailConstraint:
			return ErrEmailAlreadyExists
		case usersKDFSaltConstraint:
			return ErrKDFSaltInUse
		}
		return err
	case pgerrcode.InvalidTextRepresentation:
		// A malformed UUID cannot name an existing user.
		return ErrNoUserWasFound
	}

	return err
}

// classifyVaultError maps driver errors of the vault_items table to domain
// errors. Unrecognised errors are returned unchanged.
func classifyVaultError(err error) error {
	switch postgresError(err).Code {
	case pgerrcode.InvalidTextRepresentation:
		// A malformed item UUID cannot name an existing item.
		return ErrVaultItemNotFound
	case pgerrcode.ForeignKeyViolation:
		// The owner no longer exists.
		return ErrNoUserWasFound
	}

	return err
}
