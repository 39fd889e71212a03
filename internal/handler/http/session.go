// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// SessionCookieName is the name of the HTTP-only session cookie.
	SessionCookieName = "pm_session"

	authorizationHeader = "Authorization"
)

// setSession hands token to the client twice: as the session cookie for
// browsers and as a Bearer Authorization response header for vaultctl.
func (h *Handler) setSession(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.services.SessionService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(authorizationHeader, "Bearer "+token.SignedString)
}

func (h *Handler) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// tokenFromRequest returns the session token carried by r. The cookie wins
// over the Authorization header.
func tokenFromRequest(r *http.Request) (string, bool) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, true
	}

	if header := r.Header.Get(authorizationHeader); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err == nil {
			return token, true
		}
	}

	return "", false
}
