// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := WithUserID(context.Background(), "0190b6c4-0000-7000-8000-000000000001")

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != "0190b6c4-0000-7000-8000-000000000001" {
		t.Errorf("unexpected user id %q", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetUserIDFromContext_WrongTypeOrEmpty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}

	ctx = WithUserID(context.Background(), "")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty user id")
	}
}

func TestGetUserIDFromContext_PlainStringKeyIgnored(t *testing.T) {
	//nolint:staticcheck // deliberately collides with the key's underlying value
	ctx := context.WithValue(context.Background(), "userID", "intruder")
	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("a plain string key must not satisfy the typed key")
	}
}
