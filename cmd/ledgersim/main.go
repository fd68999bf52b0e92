// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command ledgersim serves an in-memory ICRC-1/ICRC-2 ledger over HTTP
// together with a purchase endpoint and a gRPC health service.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/handler"
	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/server"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("ledgersim")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.GetServerConfig(flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = buildInfo.Version
	}

	log.Debug().Any("server", cfg.Server).Any("simulator", cfg.Simulator).Msg("received configs")

	reg := metrics.NewRegistry()
	ledgerMetrics := metrics.NewLedgerMetrics(reg)

	l := ledger.New(ledger.Config{
		Name:     cfg.Simulator.Name,
		Symbol:   cfg.Simulator.Symbol,
		Decimals: cfg.Simulator.Decimals,
		Fee:      cfg.Simulator.Fee,
	}, ledger.WithMetrics(ledgerMetrics))

	specs, err := ledger.ParseMintSpecs(cfg.Simulator.Mint)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing mint specs")
	}
	if err = l.Seed(specs); err != nil {
		log.Fatal().Err(err).Msg("error seeding ledger")
	}

	handlers, err := handler.NewHandlers(l, cfg, ledgerMetrics, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
