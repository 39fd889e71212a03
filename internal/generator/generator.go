// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator produces random secrets from a configurable character
// pool using the OS CSPRNG.
package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Class is a bit set of character classes.
type Class uint8

const (
	Lower Class = 1 << iota
	Upper
	Digit
	Symbol

	// AllClasses selects every character class.
	AllClasses = Lower | Upper | Digit | Symbol
)

// MaxLength bounds the length of a single generated secret.
const MaxLength = 1024

const (
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()-_=+[]{};:,<.>/?"

	// ambiguousChars are glyphs that are easy to confuse when read or typed.
	ambiguousChars = "0O1lI|`'\"¦‘’"
)

// Policy describes the secret to generate.
type Policy struct {
	Length           int
	Classes          Class
	ExcludeAmbiguous bool
}

// DefaultPolicy returns a 16-character policy over all classes with
// ambiguous characters excluded.
func DefaultPolicy() Policy {
	return Policy{
		Length:           16,
		Classes:          AllClasses,
		ExcludeAmbiguous: true,
	}
}

// Pool returns the characters p draws from, in a stable order.
func (p Policy) Pool() []rune {
	var b strings.Builder
	if p.Classes&Lower != 0 {
		b.WriteString(lowerChars)
	}
	if p.Classes&Upper != 0 {
		b.WriteString(upperChars)
	}
	if p.Classes&Digit != 0 {
		b.WriteString(digitChars)
	}
	if p.Classes&Symbol != 0 {
		b.WriteString(symbolChars)
	}

	pool := []rune(b.String())
	if !p.ExcludeAmbiguous {
		return pool
	}

	filtered := pool[:0]
	for _, r := range pool {
		if !strings.ContainsRune(ambiguousChars, r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Generator draws secrets from a random source.
type Generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// Generate returns a secret of exactly p.Length characters. Every character
// is drawn independently and uniformly from p's pool.
func (g *Generator) Generate(p Policy) (string, error) {
	if p.Length < 1 || p.Length > MaxLength {
		return "", fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLength, p.Length, MaxLength)
	}

	pool := p.Pool()
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}

	// rand.Int rejects out-of-range samples, so there is no modulo bias.
	upper := big.NewInt(int64(len(pool)))
	out := make([]rune, p.Length)
	for i := range out {
		idx, err := rand.Int(g.random, upper)
		if err != nil {
			return "", fmt.Errorf("drawing random index: %w", err)
		}
		out[i] = pool[idx.Int64()]
	}

	return string(out), nil
}
