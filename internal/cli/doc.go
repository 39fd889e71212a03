// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements vaultctl, the command-line vault client.
//
// Every command that touches vault contents signs in first and derives the
// key in memory; nothing is persisted between invocations. The shell command
// keeps one session open and locks it again after a period of inactivity.
package cli
