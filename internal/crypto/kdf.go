// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultIterations is the PBKDF2 iteration count shared by every client.
	// Changing it makes existing vaults undecryptable, so it is a protocol
	// constant rather than a tuning knob.
	DefaultIterations = 210_000

	// MinIterations is the lowest iteration count DeriveKey accepts.
	MinIterations = 200_000

	// MinSaltSize is the minimum accepted salt length (128 bits).
	MinSaltSize = 16
)

// DeriveKey stretches masterPassword with the per-user salt into a 256-bit
// key using PBKDF2-HMAC-SHA-256.
//
// The result is deterministic: the same password, salt and iteration count
// always produce the same key. That is what lets the client re-derive the key
// in every session while the server stores only the salt.
//
// DeriveKey is deliberately slow. If ctx is cancelled before the derivation
// finishes, ctx.Err() is returned immediately and the abandoned key is zeroed
// once the background computation completes.
//
// Returns [ErrInvalidInput] for an empty password, a salt shorter than
// [MinSaltSize] or iterations below [MinIterations].
func DeriveKey(ctx context.Context, masterPassword string, salt []byte, iterations int) (*DerivedKey, error) {
	return deriveKey(ctx, masterPassword, salt, iterations, func() {})
}

func deriveKey(ctx context.Context, masterPassword string, salt []byte, iterations int, release func()) (*DerivedKey, error) {
	if err := checkDerivationInput(masterPassword, salt, iterations); err != nil {
		release()
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		release()
		return nil, err
	}

	password := []byte(masterPassword)
	saltCopy := append([]byte(nil), salt...)

	done := make(chan []byte, 1)
	go func() {
		defer release()
		material := pbkdf2.Key(password, saltCopy, iterations, KeySize, sha256.New)
		zero(password)
		done <- material
	}()

	select {
	case material := <-done:
		key := &DerivedKey{material: material}
		return key, nil
	case <-ctx.Done():
		go func() { zero(<-done) }()
		return nil, ctx.Err()
	}
}

func checkDerivationInput(masterPassword string, salt []byte, iterations int) error {
	switch {
	case masterPassword == "":
		return fmt.Errorf("%w: empty master password", ErrInvalidInput)
	case len(salt) == 0:
		return fmt.Errorf("%w: empty salt", ErrInvalidInput)
	case len(salt) < MinSaltSize:
		return fmt.Errorf("%w: salt must be at least %d bytes, got %d", ErrInvalidInput, MinSaltSize, len(salt))
	case iterations < MinIterations:
		return fmt.Errorf("%w: iterations must be at least %d, got %d", ErrInvalidInput, MinIterations, iterations)
	}

	return nil
}

// Deriver runs key derivations behind a weighted semaphore so that a burst
// of derivations cannot monopolise the CPU. A slot stays occupied until the
// underlying PBKDF2 computation actually finishes, even when the caller gave
// up early.
type Deriver struct {
	sem        *semaphore.Weighted
	iterations int
}

// NewDeriver returns a Deriver that allows at most concurrency parallel
// derivations with the given iteration count. Non-positive values fall back
// to one slot and [DefaultIterations].
func NewDeriver(iterations int, concurrency int64) *Deriver {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Deriver{
		sem:        semaphore.NewWeighted(concurrency),
		iterations: iterations,
	}
}

// Iterations returns the iteration count used by d.
func (d *Deriver) Iterations() int {
	return d.iterations
}

// Derive waits for a free slot (honouring ctx) and then behaves like [DeriveKey].
func (d *Deriver) Derive(ctx context.Context, masterPassword string, salt []byte) (*DerivedKey, error) {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for key derivation slot: %w", err)
	}

	return deriveKey(ctx, masterPassword, salt, d.iterations, func() { d.sem.Release(1) })
}
