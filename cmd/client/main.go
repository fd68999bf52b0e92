// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is the PeridotVault wallet CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/peridotvault/peridot-desktop-sub002/internal/client"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewClientLogger("peridot-client")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(buildInfo, log)
	err := app.Run(ctx, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
