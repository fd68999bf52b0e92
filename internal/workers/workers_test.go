// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/mock"
)

// recordingWorker appends "start:<id>" and "stop:<id>" to a shared log.
type recordingWorker struct {
	id  string
	log *[]string
}

func (r *recordingWorker) Start(context.Context) { *r.log = append(*r.log, "start:"+r.id) }
func (r *recordingWorker) Stop()                 { *r.log = append(*r.log, "stop:"+r.id) }

func TestWorkers_StartStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(
		&recordingWorker{id: "1", log: &log},
		nil,
		&recordingWorker{id: "2", log: &log},
	)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start:1", "start:2", "stop:2", "stop:1"}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestLockWatchWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockLockWatchJob(ctrl)

	called := false
	onLock := func() { called = true }
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 2*time.Second, gomock.Any()).Do(func(_ context.Context, _ time.Duration, cb func()) {
			cb()
		}),
		job.EXPECT().Stop(),
	)

	w := NewLockWatchWorker(job, config.Workers{LockWatchInterval: 2 * time.Second}, onLock)
	w.Start(ctx)
	w.Stop()

	assert.True(t, called)
}
