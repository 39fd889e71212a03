// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type mockAuthService struct {
	RegisterFunc func(ctx context.Context, creds models.Credentials) (models.User, error)
	LoginFunc    func(ctx context.Context, creds models.Credentials) (models.User, error)
	IdentityFunc func(ctx context.Context, userID string) (models.UserIdentity, error)
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.RegisterFunc(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.LoginFunc(ctx, creds)
}

func (m *mockAuthService) Identity(ctx context.Context, userID string) (models.UserIdentity, error) {
	return m.IdentityFunc(ctx, userID)
}

// mockSessionService accepts exactly one token per user: "token-<userID>".
type mockSessionService struct {
	ttl       time.Duration
	IssueFunc func(ctx context.Context, userID string) (models.Token, error)
}

func (m *mockSessionService) Issue(ctx context.Context, userID string) (models.Token, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, userID)
	}
	return models.Token{SignedString: "token-" + userID, UserID: userID}, nil
}

func (m *mockSessionService) Verify(_ context.Context, token string) (string, error) {
	userID, ok := strings.CutPrefix(token, "token-")
	if !ok || userID == "" {
		return "", service.ErrUnauthorized
	}
	return userID, nil
}

func (m *mockSessionService) TTL() time.Duration {
	return m.ttl
}

type mockVaultService struct {
	CreateFunc func(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	ListFunc   func(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error)
	UpdateFunc func(ctx context.Context, update models.VaultItemUpdate) error
	DeleteFunc func(ctx context.Context, req models.DeleteRequest) error
}

func (m *mockVaultService) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	return m.CreateFunc(ctx, item)
}

func (m *mockVaultService) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	return m.ListFunc(ctx, req)
}

func (m *mockVaultService) Update(ctx context.Context, update models.VaultItemUpdate) error {
	return m.UpdateFunc(ctx, update)
}

func (m *mockVaultService) Delete(ctx context.Context, req models.DeleteRequest) error {
	return m.DeleteFunc(ctx, req)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}
