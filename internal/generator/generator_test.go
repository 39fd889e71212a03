// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_LengthAndPool(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "lower only", policy: Policy{Length: 12, Classes: Lower}},
		{name: "digits only", policy: Policy{Length: 6, Classes: Digit}},
		{name: "symbols only", policy: Policy{Length: 40, Classes: Symbol}},
		{name: "all classes", policy: Policy{Length: 64, Classes: AllClasses}},
		{name: "all classes no ambiguous", policy: Policy{Length: 64, Classes: AllClasses, ExcludeAmbiguous: true}},
		{name: "single char", policy: Policy{Length: 1, Classes: Upper}},
		{name: "max length", policy: Policy{Length: MaxLength, Classes: Lower | Digit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := New().Generate(tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.policy.Length, utf8.RuneCountInString(secret))

			pool := string(tt.policy.Pool())
			for _, r := range secret {
				assert.True(t, strings.ContainsRune(pool, r), "character %q outside pool", r)
			}
		})
	}
}

func TestGenerate_ExcludesAmbiguous(t *testing.T) {
	secret, err := New().Generate(Policy{Length: MaxLength, Classes: AllClasses, ExcludeAmbiguous: true})
	require.NoError(t, err)

	assert.False(t, strings.ContainsAny(secret, ambiguousChars))
}

func TestGenerate_DigitsWithoutAmbiguous(t *testing.T) {
	secret, err := New().Generate(Policy{Length: 200, Classes: Digit, ExcludeAmbiguous: true})
	require.NoError(t, err)

	assert.NotContains(t, secret, "0")
	assert.NotContains(t, secret, "1")
}

func TestGenerate_EmptyPool(t *testing.T) {
	_, err := New().Generate(Policy{Length: 10})
	assert.ErrorIs(t, err, ErrEmptyPool)

	_, err = New().Generate(Policy{Length: 10, Classes: 0, ExcludeAmbiguous: true})
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestGenerate_InvalidLength(t *testing.T) {
	for _, length := range []int{-1, 0, MaxLength + 1} {
		_, err := New().Generate(Policy{Length: length, Classes: AllClasses})
		assert.ErrorIs(t, err, ErrInvalidLength, "length %d", length)
	}
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	g := &Generator{random: failingReader{}}

	_, err := g.Generate(DefaultPolicy())
	assert.Error(t, err)
}

func TestGenerate_Distribution(t *testing.T) {
	p := Policy{Length: MaxLength, Classes: Digit}
	counts := make(map[rune]int)
	for i := 0; i < 20; i++ {
		secret, err := New().Generate(p)
		require.NoError(t, err)
		for _, r := range secret {
			counts[r]++
		}
	}

	// 20480 draws over 10 digits: expected 2048 each.
	require.Len(t, counts, 10)
	for r, n := range counts {
		assert.InDelta(t, 2048, n, 400, "digit %q drawn %d times", r, n)
	}
}

func TestGenerate_SuccessiveSecretsDiffer(t *testing.T) {
	a, err := New().Generate(DefaultPolicy())
	require.NoError(t, err)
	b, err := New().Generate(DefaultPolicy())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, 16, p.Length)
	assert.Equal(t, AllClasses, p.Classes)
	assert.True(t, p.ExcludeAmbiguous)
}

func TestPolicy_Pool(t *testing.T) {
	assert.Len(t, Policy{Classes: AllClasses}.Pool(), 26+26+10+len(symbolChars))
	// 0 O 1 l I are the only ambiguous characters in the classes.
	assert.Len(t, Policy{Classes: AllClasses, ExcludeAmbiguous: true}.Pool(), 26+26+10+len(symbolChars)-5)
}
