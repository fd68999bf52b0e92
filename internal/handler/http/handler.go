// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/internal/validators"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Handler serves the gateway routes on top of one in-memory ledger.
type Handler struct {
	ledger *ledger.Ledger

	hashKey     string
	tokenKey    string
	tokenIssuer string
	version     string

	// spender and treasury drive the purchase endpoint
	spender  string
	treasury models.Account

	validator validators.Validator

	metrics  *metrics.LedgerMetrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds the gateway handler. m and gatherer may be nil, in which
// case requests are not instrumented and /metrics is not mounted.
func NewHandler(l *ledger.Ledger, cfg *config.ServerConfig, m *metrics.LedgerMetrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	if cfg.HashKey != "" {
		utils.InitHasherPool(cfg.HashKey)
	}

	treasury := cfg.Simulator.Treasury
	if treasury == "" {
		treasury = cfg.Simulator.Spender
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		ledger:      l,
		hashKey:     cfg.HashKey,
		tokenKey:    cfg.Server.TokenKey,
		tokenIssuer: cfg.Server.TokenIssuer,
		version:     cfg.Version,
		spender:     cfg.Simulator.Spender,
		treasury:    models.Account{Owner: treasury},
		validator:   validators.NewLedgerRequestValidator(),
		metrics:     m,
		gatherer:    gatherer,
		logger:      logger,
	}
}
