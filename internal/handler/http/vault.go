// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	itemIDParam = "id"
	tagQuery    = "tag"
)

// The owner is never read from the request. The vault service gate injects
// it from the verified session put in the context by withSession.

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.VaultService.List(r.Context(), models.ListRequest{
		Tag: r.URL.Query().Get(tagQuery),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if items == nil {
		items = []models.VaultItem{}
	}
	_, _ = utils.WriteJSON(w, models.ListItemsResponse{Items: items}, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var item models.VaultItem
	if err := decodeJSON(w, r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = ""
	item.CreatedAt, item.UpdatedAt = time.Time{}, time.Time{}

	created, err := h.services.VaultService.Create(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.CreateItemResponse{ID: created.ID}, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var update models.VaultItemUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = chi.URLParam(r, itemIDParam)

	if err := h.services.VaultService.Update(r.Context(), update); err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	err := h.services.VaultService.Delete(r.Context(), models.DeleteRequest{
		ID: chi.URLParam(r, itemIDParam),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
