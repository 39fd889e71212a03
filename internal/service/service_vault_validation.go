// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultValidationService rejects malformed requests before they reach
// storage. Every failure wraps ErrInvalidDataProvided.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultItemValidator(),
	}
}

func (v *VaultValidationService) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, item)
}

func (v *VaultValidationService) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, req)
}

func (v *VaultValidationService) Update(ctx context.Context, update models.VaultItemUpdate) error {
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, update)
}

func (v *VaultValidationService) Delete(ctx context.Context, req models.DeleteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Delete(ctx, req)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
