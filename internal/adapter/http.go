// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter] for the server at adapterCfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client, err := utils.NewHTTPClientFor(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/auth/register and keeps the session
// token from the Authorization response header when the server sends one.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if token, err := utils.ParseBearerToken(resp.Header().Get("Authorization")); err == nil {
		h.SetToken(token)
	}

	h.logger.Debug().Str("func", "httpServerAdapter.Register").Msg("account registered")
	return nil
}

// Login POSTs the credentials to /api/auth/login and returns the KDF salt.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) ([]byte, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}
	if len(result.KDFSalt) == 0 {
		return nil, fmt.Errorf("login response carries no kdf salt")
	}

	h.SetToken(token)
	return result.KDFSalt, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.SetToken("")
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Me(ctx context.Context) (*models.UserIdentity, error) {
	var result models.MeResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return nil, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.User, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, tag string) ([]models.VaultItem, error) {
	var result models.ListItemsResponse

	req := h.authedRequest(ctx).SetResult(&result)
	if tag != "" {
		req.SetQueryParam("tag", tag)
	}

	resp, err := req.Get("/api/vault")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Items, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.VaultItem) (string, error) {
	var result models.CreateItemResponse

	resp, err := h.authedRequest(ctx).
		SetBody(item).
		SetResult(&result).
		Post("/api/vault")
	if err != nil {
		return "", fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.ID, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, update models.VaultItemUpdate) error {
	resp, err := h.authedRequest(ctx).
		SetBody(update).
		Put("/api/vault/" + url.PathEscape(update.ID))
	if err != nil {
		return fmt.Errorf("update item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/vault/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
