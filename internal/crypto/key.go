// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"sync"
)

// KeySize is the length of a [DerivedKey] in bytes (AES-256).
const KeySize = 32

const redacted = "[REDACTED]"

var errKeyNotSerializable = errors.New("derived key must not be serialized")

// DerivedKey is the symmetric key produced from the master password.
//
// It lives only in client memory. String, GoString and the marshalling
// methods never reveal the key material, so an accidental log call or JSON
// encode cannot leak it.
type DerivedKey struct {
	mu       sync.RWMutex
	material []byte
}

// Destroy zeroes the key material. A destroyed key fails every subsequent
// operation with [ErrInvalidKey]. Destroy is idempotent and safe on nil.
func (k *DerivedKey) Destroy() {
	if k == nil {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	zero(k.material)
	k.material = nil
}

// Destroyed reports whether the key can no longer be used.
func (k *DerivedKey) Destroyed() bool {
	if k == nil {
		return true
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.material == nil
}

// String implements fmt.Stringer without exposing key material.
func (k *DerivedKey) String() string { return redacted }

// GoString implements fmt.GoStringer without exposing key material.
func (k *DerivedKey) GoString() string { return redacted }

// MarshalJSON always fails: a derived key never crosses a serialisation boundary.
func (k *DerivedKey) MarshalJSON() ([]byte, error) { return nil, errKeyNotSerializable }

// MarshalText always fails for the same reason as MarshalJSON.
func (k *DerivedKey) MarshalText() ([]byte, error) { return nil, errKeyNotSerializable }

// withMaterial runs fn with the key bytes under a read lock. fn must not
// retain the slice.
func (k *DerivedKey) withMaterial(fn func([]byte)) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	fn(k.material)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
