// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// register creates an account and signs the new user in.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(r.Context(), w, user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusCreated)
}

// login verifies the credentials and returns the KDF salt the client needs
// to derive its vault key.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.startSession(r.Context(), w, user.ID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", user.ID).Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.LoginResponse{OK: true, KDFSalt: user.KDFSalt}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSession(w)
	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

// me reports the identity bound to the session, or {"user": null}.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		_, _ = utils.WriteJSON(w, models.MeResponse{}, http.StatusOK)
		return
	}

	identity, err := h.services.AuthService.Identity(r.Context(), userID)
	if errors.Is(err, service.ErrUnauthorized) {
		_, _ = utils.WriteJSON(w, models.MeResponse{}, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{User: &identity}, http.StatusOK)
}

func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, userID string) error {
	token, err := h.services.SessionService.Issue(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrTokenCreationFailed, err)
	}

	h.setSession(w, token)
	return nil
}
