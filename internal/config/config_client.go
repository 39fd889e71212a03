// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client's key-derivation settings. The iteration count
// is not among them: every client derives with [crypto.DefaultIterations].
type ClientApp struct {
	// KDFConcurrency bounds parallel derivations in one process.
	KDFConcurrency int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockAfter is the idle period after which the session key is
	// destroyed. Zero disables auto-lock.
	AutoLockAfter time.Duration
	// ClipboardClearAfter is the delay before a copied secret is wiped from
	// the clipboard.
	ClipboardClearAfter time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig]. It contains no server secrets.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from
// environment variables, an optional JSON file and defaults.
//
// Command-line flags are not parsed here; the CLI owns its own flag set and
// applies overrides on top of the returned value.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			KDFConcurrency: cfg.App.KDFConcurrency,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			AutoLockAfter:       cfg.Workers.AutoLockAfter,
			ClipboardClearAfter: cfg.Workers.ClipboardClearAfter,
		},
	}
}
