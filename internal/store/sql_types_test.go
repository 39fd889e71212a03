// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextArray_Value(t *testing.T) {
	tests := []struct {
		name string
		in   textArray
		want string
	}{
		{name: "nil is empty array", in: nil, want: "{}"},
		{name: "empty", in: textArray{}, want: "{}"},
		{name: "plain values", in: textArray{"bank", "work"}, want: "{bank,work}"},
		{name: "quoted values", in: textArray{"a b", `x"y`}, want: `{"a b","x\"y"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.in.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestTextArray_Scan(t *testing.T) {
	var a textArray

	require.NoError(t, a.Scan("{bank,work}"))
	assert.Equal(t, textArray{"bank", "work"}, a)

	require.NoError(t, a.Scan([]byte(`{"a b"}`)))
	assert.Equal(t, textArray{"a b"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Equal(t, textArray{}, a)

	assert.Error(t, a.Scan("not an array"))
}
