// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	minCheckInterval = 10 * time.Millisecond
	maxCheckInterval = 5 * time.Second
)

// AutoLocker locks a session that has been idle for at least idleAfter.
type AutoLocker struct {
	target    Lockable
	idleAfter time.Duration
	interval  time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAutoLocker returns the auto-lock job. A non-positive idleAfter
// disables it: Run then just waits for ctx.
func NewAutoLocker(target Lockable, idleAfter time.Duration, logger *logger.Logger) *AutoLocker {
	interval := min(max(idleAfter/10, minCheckInterval), maxCheckInterval)

	return &AutoLocker{
		target:    target,
		idleAfter: idleAfter,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

func (a *AutoLocker) Run(ctx context.Context) error {
	if a.idleAfter <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			a.check()
		}
	}
}

// check locks the target when it is unlocked and idle. It reports whether
// it locked.
func (a *AutoLocker) check() bool {
	if !a.target.Unlocked() {
		return false
	}

	idle := a.now().Sub(a.target.LastActivity())
	if idle < a.idleAfter {
		return false
	}

	a.target.Lock()
	a.logger.Info().Dur("idle", idle).Msg("vault auto-locked")
	return true
}
