// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Deps is everything the commands need. One Deps value is shared by all
// commands of a shell session.
type Deps struct {
	Vault    client.Vault
	Prompter Prompter

	// Clipboard receives generated and copied secrets. It may be nil.
	Clipboard clipboard.Clipboard

	// ClipboardClearAfter is how long a copied secret stays in Clipboard.
	ClipboardClearAfter time.Duration

	// DefaultEmail is used when --email is not given.
	DefaultEmail string

	AutoLockAfter time.Duration
	Logger        *logger.Logger

	// BuildInfo is printed by the version command.
	BuildInfo string
}

// NewRootCommand builds the vaultctl command tree.
func NewRootCommand(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "vaultctl",
		Short: "Zero-knowledge password vault client",
		Long: `vaultctl stores secrets on a vault server without ever sending them in
plaintext. Every field is encrypted on this machine with a key derived from
your master password; the server only keeps ciphertext.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("email", deps.DefaultEmail, "account email")

	root.AddCommand(
		newRegisterCommand(deps),
		newUnlockCommand(deps),
		newLockCommand(deps),
		newLogoutCommand(deps),
		newWhoamiCommand(deps),
		newAddCommand(deps),
		newListCommand(deps),
		newUpdateCommand(deps),
		newRemoveCommand(deps),
		newGenerateCommand(deps),
		newShellCommand(deps),
		newUICommand(deps),
		newVersionCommand(deps),
	)
	return root
}

// Execute runs vaultctl with args.
func Execute(ctx context.Context, deps *Deps, args []string) error {
	root := NewRootCommand(deps)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func email(cmd *cobra.Command, deps *Deps) (string, error) {
	value, _ := cmd.Flags().GetString("email")
	if value == "" {
		line, err := deps.Prompter.ReadLine("Email: ")
		if err != nil {
			return "", err
		}
		value = line
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrEmptyEmail
	}
	return value, nil
}

// ensureUnlocked signs in and derives the key unless the session already
// holds one.
func ensureUnlocked(cmd *cobra.Command, deps *Deps) error {
	if deps.Vault.Unlocked() {
		return nil
	}

	addr, err := email(cmd, deps)
	if err != nil {
		return err
	}
	password, err := deps.Prompter.ReadSecret("Master password: ")
	if err != nil {
		return err
	}

	if err = deps.Vault.Unlock(cmd.Context(), addr, password); err != nil {
		return fmt.Errorf("unlock: %w", err)
	}
	return nil
}

func newVersionCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), deps.BuildInfo)
		},
	}
}
