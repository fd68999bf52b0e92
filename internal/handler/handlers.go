// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the simulator's transport handlers.
package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/handler/grpc"
	"github.com/peridotvault/peridot-desktop-sub002/internal/handler/http"
	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every configured listener.
func NewHandlers(l *ledger.Ledger, cfg *config.ServerConfig, m *metrics.LedgerMetrics, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(l, cfg, m, gatherer, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(l, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
