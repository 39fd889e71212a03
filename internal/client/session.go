// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var _ Vault = (*Session)(nil)

// Session is one signed-in vault client. It is safe for concurrent use.
type Session struct {
	adapter   adapter.ServerAdapter
	keychain  crypto.KeyChainService
	generator *generator.Generator

	mu           sync.RWMutex
	key          *crypto.DerivedKey
	lastActivity time.Time

	now    func() time.Time
	logger *logger.Logger
}

func NewSession(serverAdapter adapter.ServerAdapter, keychain crypto.KeyChainService, logger *logger.Logger) *Session {
	return &Session{
		adapter:   serverAdapter,
		keychain:  keychain,
		generator: generator.New(),
		now:       time.Now,
		logger:    logger,
	}
}

// Register creates the account, then fetches the fresh KDF salt through the
// new session and derives the key, so the caller can use the vault at once.
func (s *Session) Register(ctx context.Context, email, masterPassword string) error {
	if err := s.adapter.Register(ctx, models.Credentials{Email: email, Password: masterPassword}); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	identity, err := s.adapter.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch identity: %w", err)
	}
	if identity == nil || len(identity.KDFSalt) == 0 {
		return ErrMissingSalt
	}

	if err = s.unlockWith(ctx, masterPassword, identity.KDFSalt); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("account registered")
	return nil
}

// Unlock signs in with the master password and derives the vault key from
// the returned salt. A previous key is destroyed first.
func (s *Session) Unlock(ctx context.Context, email, masterPassword string) error {
	s.Lock()

	salt, err := s.adapter.Login(ctx, models.Credentials{Email: email, Password: masterPassword})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	return s.unlockWith(ctx, masterPassword, salt)
}

func (s *Session) unlockWith(ctx context.Context, masterPassword string, salt []byte) error {
	key, err := s.keychain.DeriveKey(ctx, masterPassword, salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	s.mu.Lock()
	s.key.Destroy()
	s.key = key
	s.lastActivity = s.now()
	s.mu.Unlock()

	s.logger.Debug().Msg("vault unlocked")
	return nil
}

// Lock destroys the key. It is idempotent.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return
	}
	s.key.Destroy()
	s.key = nil
	s.logger.Debug().Msg("vault locked")
}

func (s *Session) Logout(ctx context.Context) error {
	s.Lock()
	if err := s.adapter.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *Session) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil && !s.key.Destroyed()
}

// LastActivity is the time of the last unlock or vault operation.
func (s *Session) LastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}

func (s *Session) Whoami(ctx context.Context) (*models.UserIdentity, error) {
	return s.adapter.Me(ctx)
}

// Generate returns a random secret. It does not need an unlocked vault.
func (s *Session) Generate(p generator.Policy) (string, error) {
	return s.generator.Generate(p)
}

// activeKey returns the current key and records activity, or ErrLocked.
func (s *Session) activeKey() (*crypto.DerivedKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil || s.key.Destroyed() {
		return nil, ErrLocked
	}
	s.lastActivity = s.now()
	return s.key, nil
}
