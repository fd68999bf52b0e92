// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/spf13/cobra"

	"github.com/peridotvault/peridot-desktop-sub002/internal/tui"
	"github.com/peridotvault/peridot-desktop-sub002/internal/workers"
)

func newTUICommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			locks := make(chan struct{}, 1)
			notify := func() {
				select {
				case locks <- struct{}{}:
				default:
				}
			}

			jobs := workers.NewWorkers(workers.NewLockWatchWorker(a.services.LockWatch, a.cfg.Workers, notify))
			jobs.Start(ctx)
			defer jobs.Stop()

			return tui.New(a.services, a.buildInfo, a.logger).Run(ctx, locks)
		},
	}
}
