// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ItemInput is the plaintext of a new item. A nil field is not stored.
type ItemInput struct {
	Title    *string
	Username *string
	Password *string
	URL      *string
	Notes    *string
	Tags     []string
}

func (in ItemInput) fields() map[models.FieldName]*string {
	return map[models.FieldName]*string{
		models.FieldTitle:    in.Title,
		models.FieldUsername: in.Username,
		models.FieldPassword: in.Password,
		models.FieldURL:      in.URL,
		models.FieldNotes:    in.Notes,
	}
}

// ItemPatch changes only the non-nil fields of an item. A non-nil Tags
// replaces the whole tag set.
type ItemPatch struct {
	Title    *string
	Username *string
	Password *string
	URL      *string
	Notes    *string
	Tags     *[]string
}

func (p ItemPatch) fields() map[models.FieldName]*string {
	return ItemInput{Title: p.Title, Username: p.Username, Password: p.Password, URL: p.URL, Notes: p.Notes}.fields()
}

// FieldResult is the outcome of decrypting one field. Err is
// [crypto.ErrAuthenticationFailure] when the field cannot be opened with
// the current key.
type FieldResult struct {
	Value string
	Err   error
}

// Item is a decrypted vault item. Fields holds only the fields the item has.
type Item struct {
	ID        string
	Fields    map[models.FieldName]FieldResult
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Value returns the plaintext of a field that is present and decrypted.
func (i Item) Value(name models.FieldName) (string, bool) {
	r, ok := i.Fields[name]
	if !ok || r.Err != nil {
		return "", false
	}
	return r.Value, true
}

// Failed lists the fields that could not be decrypted, in display order.
func (i Item) Failed() []models.FieldName {
	var failed []models.FieldName
	for _, name := range models.VaultFieldNames {
		if r, ok := i.Fields[name]; ok && r.Err != nil {
			failed = append(failed, name)
		}
	}
	return failed
}

// AddItem encrypts every present field independently and stores the item.
func (s *Session) AddItem(ctx context.Context, in ItemInput) (string, error) {
	key, err := s.activeKey()
	if err != nil {
		return "", err
	}

	item := models.VaultItem{Tags: slices.Clone(in.Tags)}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err = s.sealInto(key, in.fields(), itemSetter(&item)); err != nil {
		return "", err
	}

	id, err := s.adapter.CreateItem(ctx, item)
	if err != nil {
		return "", fmt.Errorf("create item: %w", err)
	}

	s.logger.Debug().Str("item_id", id).Msg("item added")
	return id, nil
}

// ListItems fetches the caller's items, optionally restricted to one tag,
// and decrypts them. A field that fails to decrypt is reported in its
// FieldResult and does not fail the call.
func (s *Session) ListItems(ctx context.Context, tag string) ([]Item, error) {
	key, err := s.activeKey()
	if err != nil {
		return nil, err
	}

	stored, err := s.adapter.ListItems(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]Item, 0, len(stored))
	for _, v := range stored {
		item := Item{
			ID:        v.ID,
			Fields:    make(map[models.FieldName]FieldResult),
			Tags:      v.Tags,
			CreatedAt: v.CreatedAt,
			UpdatedAt: v.UpdatedAt,
		}

		for name, field := range v.Fields() {
			if field == nil {
				continue
			}
			value, err := s.keychain.DecryptField(key, *field)
			if errors.Is(err, crypto.ErrInvalidKey) {
				return nil, fmt.Errorf("%w: %w", ErrLocked, err)
			}
			item.Fields[name] = FieldResult{Value: value, Err: err}
		}

		if failed := item.Failed(); len(failed) > 0 {
			s.logger.Warn().Str("item_id", v.ID).Int("fields", len(failed)).Msg("item fields could not be decrypted")
		}
		items = append(items, item)
	}

	return items, nil
}

// UpdateItem encrypts the changed fields and sends a partial update.
func (s *Session) UpdateItem(ctx context.Context, id string, patch ItemPatch) error {
	key, err := s.activeKey()
	if err != nil {
		return err
	}

	update := models.VaultItemUpdate{ID: id}
	if patch.Tags != nil {
		tags := slices.Clone(*patch.Tags)
		if tags == nil {
			tags = []string{}
		}
		update.Tags = &tags
	}
	if err = s.sealInto(key, patch.fields(), updateSetter(&update)); err != nil {
		return err
	}

	if err = s.adapter.UpdateItem(ctx, update); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

func (s *Session) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.activeKey(); err != nil {
		return err
	}

	if err := s.adapter.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// sealInto encrypts each non-nil plaintext and hands the result to set.
func (s *Session) sealInto(key *crypto.DerivedKey, plain map[models.FieldName]*string, set func(models.FieldName, *models.EncryptedField)) error {
	for name, value := range plain {
		if value == nil {
			continue
		}
		field, err := s.keychain.EncryptField(key, *value)
		if errors.Is(err, crypto.ErrInvalidKey) {
			return fmt.Errorf("%w: %w", ErrLocked, err)
		}
		if err != nil {
			return fmt.Errorf("encrypt %s: %w", name, err)
		}
		set(name, &field)
	}
	return nil
}

func itemSetter(item *models.VaultItem) func(models.FieldName, *models.EncryptedField) {
	return func(name models.FieldName, f *models.EncryptedField) {
		switch name {
		case models.FieldTitle:
			item.Title = f
		case models.FieldUsername:
			item.Username = f
		case models.FieldPassword:
			item.Password = f
		case models.FieldURL:
			item.URL = f
		case models.FieldNotes:
			item.Notes = f
		}
	}
}

func updateSetter(update *models.VaultItemUpdate) func(models.FieldName, *models.EncryptedField) {
	return func(name models.FieldName, f *models.EncryptedField) {
		switch name {
		case models.FieldTitle:
			update.Title = f
		case models.FieldUsername:
			update.Username = f
		case models.FieldPassword:
			update.Password = f
		case models.FieldURL:
			update.URL = f
		case models.FieldNotes:
			update.Notes = f
		}
	}
}
