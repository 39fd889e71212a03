// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	createUser = `INSERT INTO users (id, email, password_hash, kdf_salt)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, kdf_salt, created_at, updated_at;`

	findUserByEmail = `SELECT id, email, password_hash, kdf_salt, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, kdf_salt, created_at, updated_at
    FROM users
    WHERE id = $1;`
)

const vaultItemsTable = "vault_items"

// vaultItemColumns is the column order used by every SELECT of vault items.
// scanVaultItem depends on it.
var vaultItemColumns = []string{
	"id",
	"owner_id",
	"title_nonce", "title_ciphertext",
	"username_nonce", "username_ciphertext",
	"password_nonce", "password_ciphertext",
	"url_nonce", "url_ciphertext",
	"notes_nonce", "notes_ciphertext",
	"tags",
	"created_at",
	"updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func nonceColumn(name models.FieldName) string      { return string(name) + "_nonce" }
func ciphertextColumn(name models.FieldName) string { return string(name) + "_ciphertext" }

// fieldValues returns the nonce and ciphertext column values for f. A nil
// field is stored as two NULLs.
func fieldValues(f *models.EncryptedField) (any, any) {
	if f == nil {
		return nil, nil
	}
	return f.Nonce, f.Ciphertext
}

// buildInsertVaultItemQuery builds the INSERT for a new item. Timestamps are
// assigned by the database and returned.
func buildInsertVaultItemQuery(item models.VaultItem) (string, []any, error) {
	fields := item.Fields()

	columns := []string{"id", "owner_id"}
	values := []any{item.ID, item.OwnerID}
	for _, name := range models.VaultFieldNames {
		nonce, ciphertext := fieldValues(fields[name])
		columns = append(columns, nonceColumn(name), ciphertextColumn(name))
		values = append(values, nonce, ciphertext)
	}
	columns = append(columns, "tags")
	values = append(values, textArray(item.Tags))

	query, args, err := psql.
		Insert(vaultItemsTable).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListVaultItemsQuery builds the owner-scoped SELECT, newest first.
// A non-empty tag restricts the result to items carrying it.
func buildListVaultItemsQuery(req models.ListRequest) (string, []any, error) {
	builder := psql.
		Select(vaultItemColumns...).
		From(vaultItemsTable).
		Where(sq.Eq{"owner_id": req.OwnerID})

	if req.Tag != "" {
		builder = builder.Where("? = ANY(tags)", req.Tag)
	}

	query, args, err := builder.
		OrderBy("updated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateVaultItemQuery builds a single UPDATE touching only the fields
// present in update. updated_at is always bumped.
func buildUpdateVaultItemQuery(update models.VaultItemUpdate) (string, []any, error) {
	builder := psql.
		Update(vaultItemsTable).
		Set("updated_at", sq.Expr("now()"))

	fields := update.Fields()
	for _, name := range models.VaultFieldNames {
		f, ok := fields[name]
		if !ok {
			continue
		}
		builder = builder.
			Set(nonceColumn(name), f.Nonce).
			Set(ciphertextColumn(name), f.Ciphertext)
	}

	if update.Tags != nil {
		builder = builder.Set("tags", textArray(*update.Tags))
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"owner_id": update.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteVaultItemQuery(req models.DeleteRequest) (string, []any, error) {
	query, args, err := psql.
		Delete(vaultItemsTable).
		Where(sq.Eq{"id": req.ID}).
		Where(sq.Eq{"owner_id": req.OwnerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
