// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// VaultItem is a single vault entry as the server stores it.
//
// Every sensitive attribute is an independently encrypted, optional
// [EncryptedField]. A nil field means "not set", which is different from a
// field holding an encrypted empty string.
//
// Tags are deliberately stored in plaintext so the server can filter on them.
// They are the only part of the vault contents the server can read and are a
// documented exception to the zero-knowledge guarantee.
type VaultItem struct {
	// ID is the server-assigned identifier (UUIDv7).
	ID string `json:"id"`

	// OwnerID is the user that created the item. It is always taken from the
	// verified session, never from the request body, and never changes.
	OwnerID string `json:"-"`

	Title    *EncryptedField `json:"title,omitempty"`
	Username *EncryptedField `json:"username,omitempty"`
	Password *EncryptedField `json:"password,omitempty"`
	URL      *EncryptedField `json:"url,omitempty"`
	Notes    *EncryptedField `json:"notes,omitempty"`

	// Tags are plaintext labels used for server-side filtering.
	Tags []string `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Fields returns the encrypted attributes keyed by name. Absent fields map
// to nil.
func (v *VaultItem) Fields() map[FieldName]*EncryptedField {
	return map[FieldName]*EncryptedField{
		FieldTitle:    v.Title,
		FieldUsername: v.Username,
		FieldPassword: v.Password,
		FieldURL:      v.URL,
		FieldNotes:    v.Notes,
	}
}

// HasTag reports whether tag is in the item's tag set (exact, case-sensitive).
func (v *VaultItem) HasTag(tag string) bool {
	return slices.Contains(v.Tags, tag)
}

// Apply merges a partial update into v. Only fields present in u replace
// the stored ones.
func (v *VaultItem) Apply(u VaultItemUpdate) {
	if u.Title != nil {
		v.Title = u.Title.Clone()
	}
	if u.Username != nil {
		v.Username = u.Username.Clone()
	}
	if u.Password != nil {
		v.Password = u.Password.Clone()
	}
	if u.URL != nil {
		v.URL = u.URL.Clone()
	}
	if u.Notes != nil {
		v.Notes = u.Notes.Clone()
	}
	if u.Tags != nil {
		v.Tags = slices.Clone(*u.Tags)
	}
}

// Clone returns a deep copy of v.
func (v VaultItem) Clone() VaultItem {
	c := v
	c.Title = v.Title.Clone()
	c.Username = v.Username.Clone()
	c.Password = v.Password.Clone()
	c.URL = v.URL.Clone()
	c.Notes = v.Notes.Clone()
	c.Tags = slices.Clone(v.Tags)
	return c
}

// VaultItemUpdate describes a partial update of one vault item.
// A nil field leaves the stored value untouched.
type VaultItemUpdate struct {
	// ID is the item to update; taken from the URL, not the body.
	ID string `json:"-"`

	// OwnerID scopes the update; injected from the verified session.
	OwnerID string `json:"-"`

	Title    *EncryptedField `json:"title,omitempty"`
	Username *EncryptedField `json:"username,omitempty"`
	Password *EncryptedField `json:"password,omitempty"`
	URL      *EncryptedField `json:"url,omitempty"`
	Notes    *EncryptedField `json:"notes,omitempty"`

	// Tags replaces the whole tag set when non-nil.
	Tags *[]string `json:"tags,omitempty"`
}

// Fields returns the encrypted attributes present in the update.
func (u *VaultItemUpdate) Fields() map[FieldName]*EncryptedField {
	fields := make(map[FieldName]*EncryptedField, len(VaultFieldNames))
	for name, f := range map[FieldName]*EncryptedField{
		FieldTitle:    u.Title,
		FieldUsername: u.Username,
		FieldPassword: u.Password,
		FieldURL:      u.URL,
		FieldNotes:    u.Notes,
	} {
		if f != nil {
			fields[name] = f
		}
	}
	return fields
}

// IsEmpty reports whether the update carries nothing to change.
func (u *VaultItemUpdate) IsEmpty() bool {
	return len(u.Fields()) == 0 && u.Tags == nil
}

// ListRequest selects the vault items of one owner.
type ListRequest struct {
	// OwnerID is always the verified caller.
	OwnerID string

	// Tag, when non-empty, restricts the result to items carrying exactly
	// this tag.
	Tag string
}

// DeleteRequest identifies a single item of a single owner.
type DeleteRequest struct {
	OwnerID string
	ID      string
}
