// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldOwnerID targets the owner injected from the session.
	FieldOwnerID = "owner_id"

	// FieldItemID targets the item identifier.
	FieldItemID = "item_id"

	// FieldEncrypted targets every encrypted field present on the item.
	FieldEncrypted = "encrypted"

	// FieldTags targets the tag set.
	FieldTags = "tags"

	// FieldTag targets the single list filter tag.
	FieldTag = "tag"

	// FieldNotEmpty requires an update to change something.
	FieldNotEmpty = "not_empty"
)

const (
	// MinCiphertextSize is the GCM tag length; anything shorter cannot be a
	// valid sealed value.
	MinCiphertextSize = crypto.TagSize

	// MaxCiphertextSize bounds one encrypted field.
	MaxCiphertextSize = 64 << 10

	MaxTags      = 32
	MaxTagLength = 64
)

// VaultItemValidator validates vault items, updates, list and delete requests.
type VaultItemValidator struct{}

func NewVaultItemValidator() Validator {
	return &VaultItemValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported:
// models.VaultItem, models.VaultItemUpdate, models.ListRequest and
// models.DeleteRequest, by value or pointer.
func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.VaultItem:
		return v.validateItem(value, fields...)
	case *models.VaultItem:
		return v.validateItem(*value, fields...)

	case models.VaultItemUpdate:
		return v.validateUpdate(value, fields...)
	case *models.VaultItemUpdate:
		return v.validateUpdate(*value, fields...)

	case models.ListRequest:
		return v.validateList(value, fields...)
	case *models.ListRequest:
		return v.validateList(*value, fields...)

	case models.DeleteRequest:
		return v.validateDelete(value, fields...)
	case *models.DeleteRequest:
		return v.validateDelete(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateItem checks a new item. Default fields: OwnerID, Encrypted, Tags.
// An item with no fields at all is allowed.
func (v *VaultItemValidator) validateItem(item models.VaultItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldEncrypted, FieldTags}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if item.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldItemID:
			if item.ID == "" {
				return ErrInvalidItemID
			}
		case FieldEncrypted:
			if err := validateEncryptedFields(item.Fields()); err != nil {
				return err
			}
		case FieldTags:
			if err := validateTags(item.Tags); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks a partial update. Default fields: OwnerID, ItemID,
// Encrypted, Tags, NotEmpty.
func (v *VaultItemValidator) validateUpdate(update models.VaultItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldItemID, FieldEncrypted, FieldTags, FieldNotEmpty}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if update.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldItemID:
			if update.ID == "" {
				return ErrInvalidItemID
			}
		case FieldEncrypted:
			if err := validateEncryptedFields(update.Fields()); err != nil {
				return err
			}
		case FieldTags:
			if update.Tags != nil {
				if err := validateTags(*update.Tags); err != nil {
					return err
				}
			}
		case FieldNotEmpty:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultItemValidator) validateList(req models.ListRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTag}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if req.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldTag:
			if req.Tag != "" && utf8.RuneCountInString(req.Tag) > MaxTagLength {
				return ErrInvalidTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultItemValidator) validateDelete(req models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldItemID}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if req.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldItemID:
			if req.ID == "" {
				return ErrInvalidItemID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEncryptedFields(fields map[models.FieldName]*models.EncryptedField) error {
	for _, name := range models.VaultFieldNames {
		f := fields[name]
		if f == nil {
			continue
		}
		if len(f.Nonce) != crypto.NonceSize {
			return fmt.Errorf("%s: %w", name, ErrInvalidNonce)
		}
		if len(f.Ciphertext) < MinCiphertextSize || len(f.Ciphertext) > MaxCiphertextSize {
			return fmt.Errorf("%s: %w", name, ErrInvalidCiphertext)
		}
	}
	return nil
}

func validateTags(tags []string) error {
	if len(tags) > MaxTags {
		return ErrTooManyTags
	}
	for i, tag := range tags {
		if n := utf8.RuneCountInString(tag); n < 1 || n > MaxTagLength {
			return fmt.Errorf("tag at index %d: %w", i, ErrInvalidTag)
		}
	}
	return nil
}
