// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// MemoryStore is an in-process implementation of both [UserRepository] and
// [VaultRepository]. It is used when no database DSN is configured and by
// service-level tests.
//
// Stored values are deep-copied on the way in and on the way out, so callers
// can never mutate the store through a returned item.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
	items   map[string]models.VaultItem
	now     func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
		items:   make(map[string]models.VaultItem),
		now:     time.Now,
	}
}

func (m *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return models.User{}, ErrEmailAlreadyExists
	}

	now := m.now().UTC()
	user.KDFSalt = slices.Clone(user.KDFSalt)
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.ID] = user
	m.byEmail[user.Email] = user.ID

	return cloneUser(user), nil
}

func (m *MemoryStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return cloneUser(m.users[id]), nil
}

func (m *MemoryStore) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return cloneUser(u), nil
}

func (m *MemoryStore) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	if err := ctx.Err(); err != nil {
		return models.VaultItem{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[item.OwnerID]; !ok {
		return models.VaultItem{}, ErrNoUserWasFound
	}

	stored := item.Clone()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	now := m.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	m.items[stored.ID] = stored
	return stored.Clone(), nil
}

func (m *MemoryStore) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	items := make([]models.VaultItem, 0)
	for _, item := range m.items {
		if item.OwnerID != req.OwnerID {
			continue
		}
		if req.Tag != "" && !item.HasTag(req.Tag) {
			continue
		}
		items = append(items, item.Clone())
	}
	m.mu.RUnlock()

	slices.SortFunc(items, func(a, b models.VaultItem) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return items, nil
}

func (m *MemoryStore) Update(ctx context.Context, update models.VaultItemUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[update.ID]
	if !ok || item.OwnerID != update.OwnerID {
		return ErrVaultItemNotFound
	}

	item.Apply(update)
	if item.Tags == nil {
		item.Tags = []string{}
	}
	item.UpdatedAt = m.now().UTC()
	m.items[item.ID] = item

	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, req models.DeleteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[req.ID]
	if !ok || item.OwnerID != req.OwnerID {
		return ErrVaultItemNotFound
	}

	delete(m.items, req.ID)
	return nil
}

func cloneUser(u models.User) models.User {
	u.KDFSalt = slices.Clone(u.KDFSalt)
	return u
}
