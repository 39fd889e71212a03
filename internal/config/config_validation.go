// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// minTokenSignKeyLen is the shortest accepted HS256 signing secret.
const minTokenSignKeyLen = 32

// validate checks that the merged server configuration is usable.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLen {
		return fmt.Errorf("%w: token sign key must be at least %d characters", ErrInvalidAppConfigs, minTokenSignKeyLen)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be within %d..%d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if cfg.App.SlowHashConcurrency <= 0 {
		return fmt.Errorf("%w: slow hash concurrency must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Server.AuthRateLimit <= 0 || cfg.Server.AuthRateBurst <= 0 {
		return fmt.Errorf("%w: auth rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.KDFConcurrency <= 0 {
		return fmt.Errorf("%w: kdf concurrency must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Workers.AutoLockAfter < 0 || cfg.Workers.ClipboardClearAfter <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
