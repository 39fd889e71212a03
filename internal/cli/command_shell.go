// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-vault/internal/workers"
)

const shellPrompt = "vault> "

func newShellCommand(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands in one session that locks itself when idle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureUnlocked(cmd, deps); err != nil {
				return err
			}

			return withAutoLock(cmd.Context(), deps, func(ctx context.Context) error {
				return runShell(ctx, cmd, deps)
			})
		},
	}
}

// withAutoLock runs fn while the auto-locker watches the session and locks
// the session once fn returns.
func withAutoLock(ctx context.Context, deps *Deps, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	background := workers.NewWorkers(workers.NewAutoLocker(deps.Vault, deps.AutoLockAfter, deps.Logger))
	done := make(chan error, 1)
	go func() { done <- background.Run(ctx) }()

	err := fn(ctx)
	cancel()
	if werr := <-done; werr != nil {
		deps.Logger.Err(werr).Msg("background worker failed")
	}
	deps.Vault.Lock()
	return err
}

// runShell executes one command per input line until EOF, exit or quit.
// A failing command prints its error and the loop goes on.
func runShell(ctx context.Context, cmd *cobra.Command, deps *Deps) error {
	email, _ := cmd.Flags().GetString("email")

	for {
		line, err := deps.Prompter.ReadLine(shellPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}
		if err != nil {
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		case "shell", "ui":
			continue
		}
		if email != "" {
			args = append(args, "--email", email)
		}

		sub := NewRootCommand(deps)
		sub.SetArgs(args)
		sub.SetOut(cmd.OutOrStdout())
		sub.SetErr(cmd.ErrOrStderr())
		if err = sub.ExecuteContext(ctx); err != nil {
			color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
}
