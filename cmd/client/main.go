// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/cli"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/clipboard"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("vaultctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		fail(log, "error getting configs", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fail(log, "create server adapter", err)
	}

	keychain := crypto.NewKeyChainService(crypto.DefaultIterations, cfg.App.KDFConcurrency)
	session := client.NewSession(serverAdapter, keychain, log)

	deps := &cli.Deps{
		Vault:               session,
		Prompter:            cli.NewTerminalPrompter(os.Stdin, os.Stderr, int(os.Stdin.Fd())),
		Clipboard:           clipboard.System(),
		ClipboardClearAfter: cfg.Workers.ClipboardClearAfter,
		DefaultEmail:        os.Getenv("VAULT_EMAIL"),
		AutoLockAfter:       cfg.Workers.AutoLockAfter,
		Logger:              log,
		BuildInfo:           buildInfo(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = cli.Execute(ctx, deps, os.Args[1:])
	session.Lock()
	if err != nil {
		fail(log, "command failed", err)
	}
}

// fail reports err on stderr, since the client log goes to a file, and exits.
func fail(log *logger.Logger, msg string, err error) {
	log.Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func buildInfo() string {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", buildVersion, buildDate, buildCommit)
}
