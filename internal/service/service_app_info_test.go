// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestNewAppInfoService(t *testing.T) {
	t.Run("empty version rejected", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})

	t.Run("reports configured version", func(t *testing.T) {
		svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, logger.Nop())
		require.NoError(t, err)

		assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
	})
}
