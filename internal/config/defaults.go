// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer         = "go-pass-vault"
	defaultTokenDuration       = 7 * 24 * time.Hour
	defaultBcryptCost          = 12
	defaultSlowHashConcurrency = 4
	defaultKDFConcurrency      = 1

	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultAuthRateLimit  = 1
	defaultAuthRateBurst  = 5

	defaultAdapterAddress = "http://localhost:8080"
	defaultAutoLockAfter  = 5 * time.Minute

	defaultClipboardClearAfter = 15 * time.Second
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:         defaultTokenIssuer,
			TokenDuration:       defaultTokenDuration,
			Version:             "dev",
			BcryptCost:          defaultBcryptCost,
			SlowHashConcurrency: defaultSlowHashConcurrency,
			KDFConcurrency:      defaultKDFConcurrency,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AuthRateLimit:  defaultAuthRateLimit,
			AuthRateBurst:  defaultAuthRateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			AutoLockAfter:       defaultAutoLockAfter,
			ClipboardClearAfter: defaultClipboardClearAfter,
		},
	}
}
