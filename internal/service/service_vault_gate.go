// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultGate is the access-control decorator around every vault operation.
//
// It reads the verified user ID that the session middleware put into the
// context. Without one, the call fails with ErrUnauthorized and nothing
// below the gate runs. With one, the owner of the request is overwritten
// with that ID, so a caller can only ever address its own items.
type VaultGate struct {
	inner   VaultService
	metrics *metrics.Metrics
}

func NewVaultGate(m *metrics.Metrics) VaultServiceWrapper {
	return &VaultGate{metrics: m}
}

func (g *VaultGate) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	ownerID, err := g.identity(ctx, "create")
	if err != nil {
		return models.VaultItem{}, err
	}

	item.OwnerID = ownerID
	return g.inner.Create(ctx, item)
}

func (g *VaultGate) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	ownerID, err := g.identity(ctx, "list")
	if err != nil {
		return nil, err
	}

	req.OwnerID = ownerID
	return g.inner.List(ctx, req)
}

func (g *VaultGate) Update(ctx context.Context, update models.VaultItemUpdate) error {
	ownerID, err := g.identity(ctx, "update")
	if err != nil {
		return err
	}

	update.OwnerID = ownerID
	return g.inner.Update(ctx, update)
}

func (g *VaultGate) Delete(ctx context.Context, req models.DeleteRequest) error {
	ownerID, err := g.identity(ctx, "delete")
	if err != nil {
		return err
	}

	req.OwnerID = ownerID
	return g.inner.Delete(ctx, req)
}

func (g *VaultGate) Wrap(inner VaultService) VaultService {
	g.inner = inner
	return g
}

func (g *VaultGate) identity(ctx context.Context, op string) (string, error) {
	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		g.metrics.RecordGateDenial(op)
		logger.FromContext(ctx).Warn().Str("op", op).Msg("vault call without identity")
		return "", ErrUnauthorized
	}
	return ownerID, nil
}
