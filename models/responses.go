// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OKResponse acknowledges a request that returns no other data.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ErrorResponse is the uniform error body of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is returned on successful login. The salt is not secret and
// lets the client derive its vault key.
type LoginResponse struct {
	OK      bool   `json:"ok"`
	KDFSalt []byte `json:"kdfSalt"`
}

// MeResponse is returned by the identity endpoint. User is nil when there is
// no valid session.
type MeResponse struct {
	User *UserIdentity `json:"user"`
}

// CreateItemResponse carries the identifier of a newly stored vault item.
type CreateItemResponse struct {
	ID string `json:"id"`
}

// ListItemsResponse carries the caller's vault items.
type ListItemsResponse struct {
	Items []VaultItem `json:"items"`
}
