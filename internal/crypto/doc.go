// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cryptography of the vault.
//
// The package has three responsibilities:
//
//   - key derivation: a master password and the per-user KDF salt are
//     stretched with PBKDF2-HMAC-SHA-256 into a 256-bit [DerivedKey];
//   - field encryption: every vault field is sealed independently with
//     AES-256-GCM under a fresh random 96-bit nonce ([FieldCipher]);
//   - salt generation for new accounts ([NewSalt]).
//
// A [DerivedKey] never leaves the process that derived it. It refuses to be
// printed or serialised and should be destroyed with [DerivedKey.Destroy] as
// soon as the session that owns it ends.
//
// Scheme:
//
//	salt  = NewSalt()                                   (registration, server)
//	key   = DeriveKey(password, salt, 210000)           (every unlock, client)
//	field = Encrypt(key, plaintext) -> (nonce, ciphertext)
//	plain = Decrypt(key, field)     -> plaintext | ErrAuthenticationFailure
package crypto
