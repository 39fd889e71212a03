// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the full-screen vault browser of vaultctl.
//
// It works on a [client.Vault] only and never sees key material. When the
// session gets locked underneath it, for example by the idle auto-lock, it
// drops every decrypted value and returns to the unlock screen.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type TUI struct {
	vault      client.Vault
	clipboard  clipboard.Clipboard
	clearAfter time.Duration
	logger     *logger.Logger
}

// New returns a browser that wipes copied secrets after clearAfter, or after
// [clipboard.DefaultClearAfter] when clearAfter is not positive. clip may be
// nil, in which case copying reports an error.
func New(vault client.Vault, clip clipboard.Clipboard, clearAfter time.Duration, logger *logger.Logger) *TUI {
	if clearAfter <= 0 {
		clearAfter = clipboard.DefaultClearAfter
	}
	return &TUI{vault: vault, clipboard: clip, clearAfter: clearAfter, logger: logger}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, email string) error {
	m := newAppModel(ctx, t.vault, t.clipboard, t.clearAfter, email)

	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	t.wipeOnExit(m.copied.value)
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("vault browser: %w", err)
	}

	t.logger.Debug().Msg("vault browser closed")
	return nil
}

// wipeOnExit clears a secret whose countdown was still running when the
// browser closed.
func (t *TUI) wipeOnExit(value string) {
	if value == "" {
		return
	}
	cleared, err := clipboard.ClearIfUnchanged(t.clipboard, value)
	if err != nil {
		t.logger.Warn().Err(err).Msg("clipboard not cleared on exit")
		return
	}
	t.logger.Debug().Bool("cleared", cleared).Msg("pending clipboard copy handled on exit")
}
