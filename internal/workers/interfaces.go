// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs of the vault client.
//
// The only job today is [AutoLocker], which destroys the in-memory vault key
// after a period of inactivity.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is done or the job
// fails.
type Worker interface {
	Run(ctx context.Context) error
}

// Lockable is what the auto-lock job needs from a client session.
type Lockable interface {
	Unlocked() bool
	LastActivity() time.Time
	Lock()
}
