// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault server's transports.
//
// It owns the HTTP API listener and the optional gRPC health listener,
// starts both, waits for SIGINT/SIGTERM/SIGQUIT and shuts them down
// gracefully.
package server
