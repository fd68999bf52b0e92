// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
)

type lockWatchWorker struct {
	job      service.LockWatchJob
	interval time.Duration
	onLock   func()
}

// NewLockWatchWorker runs job with the configured interval. onLock is
// called each time the session auto-locks.
func NewLockWatchWorker(job service.LockWatchJob, cfg config.Workers, onLock func()) Worker {
	return &lockWatchWorker{job: job, interval: cfg.LockWatchInterval, onLock: onLock}
}

func (w *lockWatchWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.onLock)
}

func (w *lockWatchWorker) Stop() {
	w.job.Stop()
}
