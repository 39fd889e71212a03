// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create an account and unlock its vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, err := email(cmd, deps)
			if err != nil {
				return err
			}

			password, err := deps.Prompter.ReadSecret("Master password: ")
			if err != nil {
				return err
			}
			confirm, err := deps.Prompter.ReadSecret("Repeat master password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return ErrPasswordMismatch
			}

			if err = deps.Vault.Register(cmd.Context(), addr, password); err != nil {
				return err
			}

			okColor.Fprintf(cmd.OutOrStdout(), "registered %s\n", addr)
			return nil
		},
	}
}

func newUnlockCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Sign in and derive the vault key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureUnlocked(cmd, deps); err != nil {
				return err
			}
			okColor.Fprintln(cmd.OutOrStdout(), "unlocked")
			return nil
		},
	}
}

func newLockCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Forget the vault key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps.Vault.Lock()
			fmt.Fprintln(cmd.OutOrStdout(), "locked")
			return nil
		},
	}
}

func newLogoutCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Lock the vault and end the server session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := deps.Vault.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureUnlocked(cmd, deps); err != nil {
				return err
			}

			identity, err := deps.Vault.Whoami(cmd.Context())
			if err != nil {
				return err
			}
			if identity == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", identity.Email, identity.ID)
			return nil
		},
	}
}
