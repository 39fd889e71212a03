// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the vault engine behind vaultctl.
//
// A [Session] signs in to the server, derives the vault key from the master
// password and the account's KDF salt, and keeps that key in memory only
// while unlocked. Every vault field is encrypted here before it leaves the
// process and decrypted here after it comes back; the server only ever sees
// ciphertext, nonces and plaintext tags.
package client
