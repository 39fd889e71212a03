// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/generator"
)

func newGenerateCommand(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()

			policy := generator.DefaultPolicy()
			policy.Length, _ = flags.GetInt("length")
			policy.ExcludeAmbiguous, _ = flags.GetBool("exclude-ambiguous")

			for flag, class := range map[string]generator.Class{
				"no-lower":   generator.Lower,
				"no-upper":   generator.Upper,
				"no-digits":  generator.Digit,
				"no-symbols": generator.Symbol,
			} {
				if off, _ := flags.GetBool(flag); off {
					policy.Classes &^= class
				}
			}
			if policy.Classes == 0 {
				return ErrNoClasses
			}

			secret, err := deps.Vault.Generate(policy)
			if err != nil {
				return err
			}

			if cp, _ := flags.GetBool("copy"); cp {
				return copyWithAutoClear(cmd, deps, secret)
			}

			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}

	defaults := generator.DefaultPolicy()
	cmd.Flags().IntP("length", "n", defaults.Length, fmt.Sprintf("password length (1..%d)", generator.MaxLength))
	cmd.Flags().Bool("no-lower", false, "no lower-case letters")
	cmd.Flags().Bool("no-upper", false, "no upper-case letters")
	cmd.Flags().Bool("no-digits", false, "no digits")
	cmd.Flags().Bool("no-symbols", false, "no symbols")
	cmd.Flags().Bool("exclude-ambiguous", defaults.ExcludeAmbiguous, "skip look-alike characters such as 0/O and 1/l")
	cmd.Flags().Bool("copy", false, "copy to the clipboard instead of printing")
	return cmd
}

// copyWithAutoClear puts secret on the clipboard and blocks until it is
// wiped again. Interrupting the wait wipes it at once.
func copyWithAutoClear(cmd *cobra.Command, deps *Deps, secret string) error {
	if deps.Clipboard == nil {
		return clipboard.ErrUnavailable
	}
	if err := deps.Clipboard.Write(secret); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	delay := deps.ClipboardClearAfter
	if delay <= 0 {
		delay = clipboard.DefaultClearAfter
	}
	okColor.Fprintf(cmd.ErrOrStderr(), "copied to clipboard, clearing in %s (Ctrl+C clears now)\n", delay)

	cleared, err := clipboard.ClearAfter(cmd.Context(), deps.Clipboard, secret, delay)
	if err != nil {
		return err
	}
	if cleared {
		fmt.Fprintln(cmd.ErrOrStderr(), "clipboard cleared")
	}
	return nil
}
