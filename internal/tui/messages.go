// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-pass-vault/internal/client"

type unlockedMsg struct {
	err error
}

type itemsLoadedMsg struct {
	items []client.Item
	err   error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct {
	what  string
	value string
	err   error
}

// clipboardExpiredMsg fires when value has been on the clipboard for the
// configured delay.
type clipboardExpiredMsg struct {
	value string
}

type clipboardWipedMsg struct {
	cleared bool
	err     error
}

// lockCheckMsg is the periodic tick that notices an auto-locked session.
type lockCheckMsg struct{}
