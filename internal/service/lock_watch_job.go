// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

type lockWatchJob struct {
	sessions SessionLockStore
	logger   *logger.Logger

	// mu serialises Start and Stop; the watcher goroutine never takes it
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLockWatchJob creates a job that polls sessions.IsUnlocked on a ticker.
// The job is idle until Start is called.
func NewLockWatchJob(sessions SessionLockStore, log *logger.Logger) LockWatchJob {
	return &lockWatchJob{sessions: sessions, logger: log}
}

// Start implements LockWatchJob. It stops any previously running watcher, then
// launches a goroutine that checks the session every interval. If interval is
// zero or negative it defaults to [config.DefaultLockWatchInterval]. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *lockWatchJob) Start(ctx context.Context, interval time.Duration, onLock func()) {
	if interval <= 0 {
		interval = config.DefaultLockWatchInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		unlocked, err := j.sessions.IsUnlocked(jobCtx)
		if err != nil {
			j.logger.Warn().Err(err).Msg("lock watch: initial check failed")
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				now, err := j.sessions.IsUnlocked(jobCtx)
				if err != nil {
					// keep the previous state; a failed read is not a lock
					j.logger.Warn().Err(err).Msg("lock watch: check failed")
					continue
				}
				if unlocked && !now && onLock != nil {
					j.logger.Info().Msg("session expired, wallet auto-locked")
					onLock()
				}
				unlocked = now
			}
		}
	}()
}

// Stop implements LockWatchJob. It cancels the watcher and blocks until the
// goroutine has exited. Safe to call when the job is not running.
func (j *lockWatchJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

func (j *lockWatchJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
