// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// recordingVault is an inner VaultService that remembers what reached it.
type recordingVault struct {
	mu      sync.Mutex
	calls   int
	created []models.VaultItem
	lists   []models.ListRequest
	updates []models.VaultItemUpdate
	deletes []models.DeleteRequest
}

func (r *recordingVault) Create(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.created = append(r.created, item)
	item.ID = "new-id"
	return item, nil
}

func (r *recordingVault) List(_ context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lists = append(r.lists, req)
	return []models.VaultItem{}, nil
}

func (r *recordingVault) Update(_ context.Context, update models.VaultItemUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.updates = append(r.updates, update)
	return nil
}

func (r *recordingVault) Delete(_ context.Context, req models.DeleteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.deletes = append(r.deletes, req)
	return nil
}

// fixedIDs returns the same identifier every time.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// counterValue reads one labelled counter from reg; 0 when absent.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, m := range family.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func validField() *models.EncryptedField {
	return &models.EncryptedField{
		Nonce:      make([]byte, 12),
		Ciphertext: make([]byte, 32),
	}
}

func withIdentity(userID string) context.Context {
	return utils.WithUserID(context.Background(), userID)
}

func testStructuredConfig() config.StructuredConfig {
	return config.StructuredConfig{App: testAppConfig()}
}
