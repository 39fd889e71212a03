// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/metrics"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

const testUserID = "0190b6a4-7c2e-7000-8000-000000000001"

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

type testServer struct {
	router  http.Handler
	auth    *mockAuthService
	vault   *mockVaultService
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, cfg config.Server) *testServer {
	t.Helper()

	ts := &testServer{
		auth:    &mockAuthService{},
		vault:   &mockVaultService{},
		metrics: metrics.NewMetrics(),
	}
	services := &service.Services{
		AuthService:    ts.auth,
		SessionService: &mockSessionService{ttl: time.Hour},
		VaultService:   service.NewVaultGate(ts.metrics).Wrap(ts.vault),
		AppInfoService: &mockAppInfoService{version: "v1.2.3"},
	}
	ts.router = NewHandler(services, cfg, ts.metrics, logger.Nop()).Init()
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSessionCookie(req *http.Request, userID string) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token-" + userID})
	return req
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func testField(b byte) *models.EncryptedField {
	return &models.EncryptedField{
		Nonce:      []byte(strings.Repeat(string(b), 12)),
		Ciphertext: []byte(strings.Repeat(string(b), 20)),
	}
}

// ---- Auth ----

func TestRegister(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		registerErr error
		wantStatus  int
		wantCookie  bool
		wantError   string
	}{
		{
			name:       "created and signed in",
			body:       `{"email":"a@example.com","password":"correct horse"}`,
			wantStatus: http.StatusCreated,
			wantCookie: true,
		},
		{
			name:        "email taken",
			body:        `{"email":"a@example.com","password":"correct horse"}`,
			registerErr: service.ErrEmailTaken,
			wantStatus:  http.StatusConflict,
			wantError:   service.ErrEmailTaken.Error(),
		},
		{
			name:        "validation failure",
			body:        `{"email":"nope","password":"short"}`,
			registerErr: fmt.Errorf("%w: invalid email", service.ErrInvalidDataProvided),
			wantStatus:  http.StatusBadRequest,
			wantError:   "invalid data provided: invalid email",
		},
		{
			name:       "malformed JSON",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"email":"a@example.com","password":"correct horse","admin":true}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "store failure is not leaked",
			body:        `{"email":"a@example.com","password":"correct horse"}`,
			registerErr: fmt.Errorf("%w: connection refused", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantError:   "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.Server{})
			ts.auth.RegisterFunc = func(_ context.Context, creds models.Credentials) (models.User, error) {
				if tt.registerErr != nil {
					return models.User{}, tt.registerErr
				}
				assert.Equal(t, "a@example.com", creds.Email)
				return models.User{ID: testUserID, Email: creds.Email}, nil
			}

			rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/register", tt.body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCookie {
				assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
				c := sessionCookie(t, rr)
				assert.Equal(t, "token-"+testUserID, c.Value)
				assert.Equal(t, "Bearer token-"+testUserID, rr.Header().Get("Authorization"))
			} else {
				assert.Empty(t, rr.Result().Cookies())
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rr).Error)
			}
		})
	}
}

func TestSessionCookieAttributes(t *testing.T) {
	tests := []struct {
		name       string
		insecure   bool
		wantSecure bool
	}{
		{name: "secure by default", wantSecure: true},
		{name: "insecure for local development", insecure: true, wantSecure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.Server{InsecureCookie: tt.insecure})
			ts.auth.LoginFunc = func(context.Context, models.Credentials) (models.User, error) {
				return models.User{ID: testUserID}, nil
			}

			rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"correct horse"}`))
			require.Equal(t, http.StatusOK, rr.Code)

			c := sessionCookie(t, rr)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, tt.wantSecure, c.Secure)
			assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
			assert.Equal(t, "/", c.Path)
			assert.Equal(t, int(time.Hour.Seconds()), c.MaxAge)
		})
	}
}

func TestLogin(t *testing.T) {
	salt := []byte("0123456789abcdef")

	t.Run("returns the kdf salt", func(t *testing.T) {
		ts := newTestServer(t, config.Server{})
		ts.auth.LoginFunc = func(context.Context, models.Credentials) (models.User, error) {
			return models.User{ID: testUserID, KDFSalt: salt}, nil
		}

		rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"correct horse"}`))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := decodeBody[models.LoginResponse](t, rr)
		assert.True(t, resp.OK)
		assert.Equal(t, salt, resp.KDFSalt)
		assert.Equal(t, "Bearer token-"+testUserID, rr.Header().Get("Authorization"))
	})

	t.Run("uniform invalid credentials", func(t *testing.T) {
		ts := newTestServer(t, config.Server{})
		ts.auth.LoginFunc = func(context.Context, models.Credentials) (models.User, error) {
			return models.User{}, fmt.Errorf("compare: %w", service.ErrInvalidCredentials)
		}

		rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"wrong password"}`))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid credentials", decodeBody[models.ErrorResponse](t, rr).Error)
		assert.Empty(t, rr.Result().Cookies())
	})

	t.Run("token issue failure", func(t *testing.T) {
		ts := newTestServer(t, config.Server{})
		ts.auth.LoginFunc = func(context.Context, models.Credentials) (models.User, error) {
			return models.User{ID: testUserID}, nil
		}
		ts.router = NewHandler(&service.Services{
			AuthService: ts.auth,
			SessionService: &mockSessionService{
				ttl: time.Hour,
				IssueFunc: func(context.Context, string) (models.Token, error) {
					return models.Token{}, errors.New("sign failed")
				},
			},
			VaultService:   ts.vault,
			AppInfoService: &mockAppInfoService{},
		}, config.Server{}, nil, logger.Nop()).Init()

		rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", `{"email":"a@example.com","password":"correct horse"}`))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get("Authorization"))
	})
}

func TestLogout_ClearsCookie(t *testing.T) {
	ts := newTestServer(t, config.Server{})

	rr := ts.do(withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil), testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
	c := sessionCookie(t, rr)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
}

func TestMe(t *testing.T) {
	identity := models.UserIdentity{ID: testUserID, Email: "a@example.com", KDFSalt: []byte("0123456789abcdef")}

	tests := []struct {
		name        string
		prepare     func(r *http.Request)
		identityErr error
		wantStatus  int
		wantUser    bool
	}{
		{
			name:       "no session",
			prepare:    func(*http.Request) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "garbage cookie",
			prepare:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "forged"}) },
			wantStatus: http.StatusOK,
		},
		{
			name:       "cookie session",
			prepare:    func(r *http.Request) { withSessionCookie(r, testUserID) },
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "bearer session",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer token-"+testUserID) },
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:        "account gone",
			prepare:     func(r *http.Request) { withSessionCookie(r, testUserID) },
			identityErr: service.ErrUnauthorized,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "store failure",
			prepare:     func(r *http.Request) { withSessionCookie(r, testUserID) },
			identityErr: store.ErrScanningRow,
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.Server{})
			ts.auth.IdentityFunc = func(_ context.Context, userID string) (models.UserIdentity, error) {
				assert.Equal(t, testUserID, userID)
				return identity, tt.identityErr
			}

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.prepare(req)
			rr := ts.do(req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			resp := decodeBody[models.MeResponse](t, rr)
			if tt.wantUser {
				require.NotNil(t, resp.User)
				assert.Equal(t, identity, *resp.User)
			} else {
				assert.Nil(t, resp.User)
				assert.JSONEq(t, `{"user":null}`, rr.Body.String())
			}
		})
	}
}

func TestAuthRateLimit(t *testing.T) {
	ts := newTestServer(t, config.Server{AuthRateLimit: 0.001, AuthRateBurst: 2})
	calls := 0
	ts.auth.LoginFunc = func(context.Context, models.Credentials) (models.User, error) {
		calls++
		return models.User{}, service.ErrInvalidCredentials
	}

	body := `{"email":"a@example.com","password":"wrong password"}`
	for range 2 {
		rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", body))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}

	rr := ts.do(jsonRequest(http.MethodPost, "/api/auth/login", body))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
	assert.Equal(t, 2, calls, "throttled request must not reach the service")

	other := jsonRequest(http.MethodPost, "/api/auth/login", body)
	other.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusUnauthorized, ts.do(other).Code, "other clients keep their own budget")

	// Session-bound routes are not throttled.
	ts.auth.IdentityFunc = func(context.Context, string) (models.UserIdentity, error) {
		return models.UserIdentity{ID: testUserID}, nil
	}
	assert.Equal(t, http.StatusOK, ts.do(withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil), testUserID)).Code)
}

// ---- Vault ----

func TestVaultRoutes_RequireSession(t *testing.T) {
	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/vault", nil),
		jsonRequest(http.MethodPost, "/api/vault", `{}`),
		jsonRequest(http.MethodPut, "/api/vault/some-id", `{"tags":["x"]}`),
		httptest.NewRequest(http.MethodDelete, "/api/vault/some-id", nil),
	}

	for _, req := range requests {
		t.Run(req.Method, func(t *testing.T) {
			ts := newTestServer(t, config.Server{})
			// Any call reaching the inner service panics on a nil func.
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})

			rr := ts.do(req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "unauthorized", decodeBody[models.ErrorResponse](t, rr).Error)
		})
	}
}

func TestListItems(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ts.vault.ListFunc = func(_ context.Context, req models.ListRequest) ([]models.VaultItem, error) {
		assert.Equal(t, testUserID, req.OwnerID)
		if req.Tag == "none" {
			return nil, nil
		}
		assert.Equal(t, "bank", req.Tag)
		return []models.VaultItem{{ID: "item-1", Title: testField('a'), Tags: []string{"bank"}, UpdatedAt: updated}}, nil
	}

	rr := ts.do(withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/vault?tag=bank", nil), testUserID))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.ListItemsResponse](t, rr)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "item-1", resp.Items[0].ID)
	assert.Equal(t, testField('a'), resp.Items[0].Title)
	assert.Nil(t, resp.Items[0].Notes)
	assert.NotContains(t, rr.Body.String(), testUserID, "owner is never echoed")

	rr = ts.do(withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/vault?tag=none", nil), testUserID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"items":[]}`, rr.Body.String())
}

func TestCreateItem(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	ts.vault.CreateFunc = func(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
		assert.Equal(t, testUserID, item.OwnerID)
		assert.Empty(t, item.ID, "client-chosen ids are dropped")
		assert.Equal(t, testField('t'), item.Title)
		assert.Nil(t, item.Password)
		assert.Equal(t, []string{"work"}, item.Tags)
		item.ID = "item-42"
		return item, nil
	}

	body := `{"id":"mine","title":{"nonce":"dHR0dHR0dHR0dHR0","ciphertext":"dHR0dHR0dHR0dHR0dHR0dHR0dHQ="},"tags":["work"]}`
	rr := ts.do(withSessionCookie(jsonRequest(http.MethodPost, "/api/vault", body), testUserID))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"item-42"}`, rr.Body.String())
}

func TestUpdateItem(t *testing.T) {
	tests := []struct {
		name       string
		updateErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "updated", wantStatus: http.StatusOK, wantBody: `{"ok":true}`},
		{name: "not owned", updateErr: fmt.Errorf("update: %w", service.ErrNotFound), wantStatus: http.StatusNotFound, wantBody: `{"error":"not found"}`},
		{name: "invalid", updateErr: fmt.Errorf("%w: no fields to update", service.ErrInvalidDataProvided), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.Server{})
			ts.vault.UpdateFunc = func(_ context.Context, update models.VaultItemUpdate) error {
				assert.Equal(t, "item-7", update.ID)
				assert.Equal(t, testUserID, update.OwnerID)
				require.NotNil(t, update.Tags)
				assert.Equal(t, []string{"a", "b"}, *update.Tags)
				assert.Nil(t, update.Title)
				return tt.updateErr
			}

			rr := ts.do(withSessionCookie(jsonRequest(http.MethodPut, "/api/vault/item-7", `{"tags":["a","b"]}`), testUserID))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestDeleteItem(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	ts.vault.DeleteFunc = func(_ context.Context, req models.DeleteRequest) error {
		assert.Equal(t, testUserID, req.OwnerID)
		if req.ID == "foreign" {
			return service.ErrNotFound
		}
		return nil
	}

	rr := ts.do(withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/vault/item-7", nil), testUserID))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ok":true}`, rr.Body.String())

	rr = ts.do(withSessionCookie(httptest.NewRequest(http.MethodDelete, "/api/vault/foreign", nil), testUserID))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Misc routes ----

func TestVersion(t *testing.T) {
	ts := newTestServer(t, config.Server{})

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, config.Server{})
	ts.do(httptest.NewRequest(http.MethodGet, "/api/version", nil))
	ts.do(httptest.NewRequest(http.MethodGet, "/api/vault", nil))

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route="/api/version"`)
	assert.Contains(t, rr.Body.String(), "vault_gate_denials_total")
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, config.Server{})

	rr := ts.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rr.Body.String())
}
