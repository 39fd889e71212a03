// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the vault server and the vaultctl client.
//
// Configuration is assembled from several layers. For every field the first
// layer with a non-zero value wins:
//  1. Command-line flags (server only)
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
