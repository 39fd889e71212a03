// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text     string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) Write(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	return nil
}

func (f *fakeClipboard) Read() (string, error) { return f.text, f.readErr }

func TestClearIfUnchanged(t *testing.T) {
	tests := []struct {
		name      string
		clip      *fakeClipboard
		wantClear bool
		wantText  string
		wantErr   bool
	}{
		{name: "still holds the secret", clip: &fakeClipboard{text: "s3cret"}, wantClear: true, wantText: ""},
		{name: "user copied something else", clip: &fakeClipboard{text: "lunch menu"}, wantText: "lunch menu"},
		{name: "read fails", clip: &fakeClipboard{text: "s3cret", readErr: errors.New("no display")}, wantText: "s3cret", wantErr: true},
		{name: "write fails", clip: &fakeClipboard{text: "s3cret", writeErr: errors.New("no display")}, wantText: "s3cret", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleared, err := ClearIfUnchanged(tt.clip, "s3cret")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantClear, cleared)
			assert.Equal(t, tt.wantText, tt.clip.text)
		})
	}
}

func TestClearIfUnchanged_NoClipboard(t *testing.T) {
	_, err := ClearIfUnchanged(nil, "s3cret")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClearAfter_WaitsForDelay(t *testing.T) {
	clip := &fakeClipboard{text: "s3cret"}

	start := time.Now()
	cleared, err := ClearAfter(context.Background(), clip, "s3cret", 30*time.Millisecond)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, clip.text)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestClearAfter_CancelClearsNow(t *testing.T) {
	clip := &fakeClipboard{text: "s3cret"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cleared, err := ClearAfter(ctx, clip, "s3cret", time.Hour)

	require.NoError(t, err)
	assert.True(t, cleared)
	assert.Empty(t, clip.text)
}

func TestClearAfter_Disabled(t *testing.T) {
	clip := &fakeClipboard{text: "s3cret"}

	cleared, err := ClearAfter(context.Background(), clip, "s3cret", 0)

	require.NoError(t, err)
	assert.False(t, cleared)
	assert.Equal(t, "s3cret", clip.text)
}
