// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the simulator's gRPC surface: the standard health
// service and server reflection.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// LedgerService is the health service name reported for the gateway.
const LedgerService = "peridot.ledger.v1.Gateway"

// Handler owns the health state of the simulator.
type Handler struct {
	ledger *ledger.Ledger
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler whose services start as NOT_SERVING until
// [Handler.Serve] is called.
func NewHandler(l *ledger.Ledger, logger *logger.Logger) *Handler {
	h := &Handler{
		ledger: l,
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Serve marks the gateway healthy. A handler without a ledger stays
// NOT_SERVING.
func (h *Handler) Serve() {
	if h.ledger == nil {
		h.logger.Warn().Str("func", "*Handler.Serve").Msg("no ledger attached, staying NOT_SERVING")
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(LedgerService, status)
	h.logger.Info().Str("func", "*Handler.setStatus").Str("status", status.String()).Msg("health status changed")
}
