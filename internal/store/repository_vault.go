// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. Every statement carries the owner in its WHERE clause,
// so rows of other owners can never be read or changed.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] over db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultRepository) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVaultItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Create").Msg("error building query")
		return models.VaultItem{}, err
	}

	created := item.Clone()
	if created.Tags == nil {
		created.Tags = []string{}
	}
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*vaultRepository.Create").Msg("error inserting vault item")
		if mapped := classifyVaultError(err); mapped != err {
			return models.VaultItem{}, mapped
		}
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (r *vaultRepository) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVaultItemsQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error querying vault items")
		if mapped := classifyVaultError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		item, err := scanVaultItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.List").Msg("error scanning vault item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.List").Msg("error iterating vault items")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (r *vaultRepository) Update(ctx context.Context, update models.VaultItemUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVaultItemQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Update").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*vaultRepository.Update", query, args)
}

func (r *vaultRepository) Delete(ctx context.Context, req models.DeleteRequest) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVaultItemQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.Delete").Msg("error building query")
		return err
	}

	return r.execAffectingOne(ctx, "*vaultRepository.Delete", query, args)
}

// execAffectingOne runs an owner-scoped statement and reports
// [ErrVaultItemNotFound] when it touched no row.
func (r *vaultRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := classifyVaultError(err); mapped != err {
			return mapped
		}
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultItemNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanVaultItem reads one row in [vaultItemColumns] order.
func scanVaultItem(row rowScanner) (models.VaultItem, error) {
	var (
		item  models.VaultItem
		pairs [5][2][]byte
		tags  textArray
	)

	err := row.Scan(
		&item.ID,
		&item.OwnerID,
		&pairs[0][0], &pairs[0][1],
		&pairs[1][0], &pairs[1][1],
		&pairs[2][0], &pairs[2][1],
		&pairs[3][0], &pairs[3][1],
		&pairs[4][0], &pairs[4][1],
		&tags,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.VaultItem{}, err
	}

	item.Title = fieldFromColumns(pairs[0])
	item.Username = fieldFromColumns(pairs[1])
	item.Password = fieldFromColumns(pairs[2])
	item.URL = fieldFromColumns(pairs[3])
	item.Notes = fieldFromColumns(pairs[4])
	item.Tags = []string(tags)

	return item, nil
}

// fieldFromColumns rebuilds an optional field. A NULL nonce means the field
// was never set.
func fieldFromColumns(pair [2][]byte) *models.EncryptedField {
	if pair[0] == nil {
		return nil
	}
	ciphertext := pair[1]
	if ciphertext == nil {
		ciphertext = []byte{}
	}
	return &models.EncryptedField{Nonce: pair[0], Ciphertext: ciphertext}
}
