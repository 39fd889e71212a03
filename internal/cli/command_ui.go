// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

func newUICommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Browse the vault in a full-screen terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")

			browser := tui.New(deps.Vault, deps.Clipboard, deps.ClipboardClearAfter, deps.Logger)
			return withAutoLock(cmd.Context(), deps, func(ctx context.Context) error {
				return browser.Run(ctx, email)
			})
		},
	}
}
