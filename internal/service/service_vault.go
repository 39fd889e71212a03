// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService is the innermost VaultService. It trusts OwnerID: the gate
// has already replaced it with the verified identity.
type vaultService struct {
	vaultRepository store.VaultRepository
	ids             idGenerator
	locks           *itemLocks

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, ids idGenerator, m *metrics.Metrics, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		ids:             ids,
		locks:           newItemLocks(),
		metrics:         m,
		logger:          logger,
	}
}

// Create assigns a new ID and stores the item. Any client-supplied ID is
// discarded.
func (s *vaultService) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	item.ID = s.ids.Generate()

	created, err := s.vaultRepository.Create(ctx, item)
	s.metrics.RecordVaultOperation("create", err)
	if err != nil {
		return models.VaultItem{}, s.mapStoreError(ctx, "create", err)
	}

	return created, nil
}

func (s *vaultService) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	items, err := s.vaultRepository.List(ctx, req)
	s.metrics.RecordVaultOperation("list", err)
	if err != nil {
		return nil, s.mapStoreError(ctx, "list", err)
	}

	return items, nil
}

// Update applies a partial update. Updates of one item are serialised so
// that two concurrent partial updates cannot interleave.
func (s *vaultService) Update(ctx context.Context, update models.VaultItemUpdate) error {
	unlock := s.locks.lock(itemKey(update.OwnerID, update.ID))
	defer unlock()

	err := s.vaultRepository.Update(ctx, update)
	s.metrics.RecordVaultOperation("update", err)
	if err != nil {
		return s.mapStoreError(ctx, "update", err)
	}

	return nil
}

func (s *vaultService) Delete(ctx context.Context, req models.DeleteRequest) error {
	unlock := s.locks.lock(itemKey(req.OwnerID, req.ID))
	defer unlock()

	err := s.vaultRepository.Delete(ctx, req)
	s.metrics.RecordVaultOperation("delete", err)
	if err != nil {
		return s.mapStoreError(ctx, "delete", err)
	}

	return nil
}

// mapStoreError turns storage sentinels into service errors. A missing item
// and an item of another owner are both ErrNotFound; a vanished owner is
// ErrUnauthorized.
func (s *vaultService) mapStoreError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, store.ErrVaultItemNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	logger.FromContext(ctx).Err(err).Str("op", op).Msg("vault storage error")
	return fmt.Errorf("vault %s failed: %w", op, err)
}
