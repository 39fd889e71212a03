// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON HTTP API of the vault server.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging, metrics, response compression, session resolution and per-IP
// throttling of the auth endpoints happen here; ownership checks do not. The
// verified user ID is put into the request context and the vault service
// gate decides what the caller may touch.
package http
