// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// dotEnvPath is the optional env file read before the environment itself.
const dotEnvPath = ".env"

// kdfIterationsEnv was once a client setting. A vault key derived with any
// other count cannot open existing fields, so setting it is an error.
const kdfIterationsEnv = "APP_KDF_ITERATIONS"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	if _, ok := os.LookupEnv(kdfIterationsEnv); ok {
		return fmt.Errorf("%w: %s is not configurable, every client uses %d iterations",
			ErrInvalidAppConfigs, kdfIterationsEnv, crypto.DefaultIterations)
	}

	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv copies variables from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error reading %s: %w", path, err)
}
