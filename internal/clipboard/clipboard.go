// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard copies secrets to the system clipboard and wipes them
// again after a delay.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultClearAfter is how long a copied secret stays in the clipboard.
const DefaultClearAfter = 15 * time.Second

// ErrUnavailable is returned when no clipboard is configured.
var ErrUnavailable = errors.New("clipboard is not available")

// Clipboard reads and writes the clipboard text.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

type system struct{}

// System returns the clipboard of the desktop session.
func System() Clipboard { return system{} }

func (system) Write(text string) error { return clipboard.WriteAll(text) }

func (system) Read() (string, error) { return clipboard.ReadAll() }

// ClearIfUnchanged empties c when it still holds value, so text the user
// copied since is left alone. It reports whether c was cleared.
func ClearIfUnchanged(c Clipboard, value string) (bool, error) {
	if c == nil {
		return false, ErrUnavailable
	}

	current, err := c.Read()
	if err != nil {
		return false, fmt.Errorf("read clipboard: %w", err)
	}
	if current != value {
		return false, nil
	}

	if err = c.Write(""); err != nil {
		return false, fmt.Errorf("clear clipboard: %w", err)
	}
	return true, nil
}

// ClearAfter waits for delay and then clears value from c. A cancelled ctx
// clears right away. A non-positive delay disables clearing.
func ClearAfter(ctx context.Context, c Clipboard, value string, delay time.Duration) (bool, error) {
	if delay <= 0 {
		return false, nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
	return ClearIfUnchanged(c, value)
}
