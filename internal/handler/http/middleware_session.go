// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// withSession resolves the caller's identity. A verified token puts its user
// ID into the request context; a missing or bad token leaves the request
// anonymous and never fails it here. Vault routes are refused later by the
// service gate.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := tokenFromRequest(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := h.services.SessionService.Verify(r.Context(), token)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("session token rejected")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}
