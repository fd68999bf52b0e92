// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/handler"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// shutdownTimeout bounds graceful shutdown of all listeners.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	// ready is closed once every listener is bound
	ready chan struct{}
}

// NewServer builds the listeners enabled in cfg. At least one of HTTP or
// gRPC must be configured.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger, ready: make(chan struct{})}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) listeners() []listener {
	var out []listener
	if s.httpServer != nil {
		out = append(out, s.httpServer)
	}
	if s.gRPCServer != nil {
		out = append(out, s.gRPCServer)
	}
	return out
}

func (s *server) RunServer(ctx context.Context) error {
	listeners := s.listeners()

	for i, l := range listeners {
		if err := l.listen(); err != nil {
			for _, bound := range listeners[:i] {
				bound.unbind()
			}
			return err
		}
	}
	close(s.ready)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErrs := make(chan error, len(listeners))
	for _, l := range listeners {
		go func() {
			serveErrs <- l.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop requested")
	case runErr = <-serveErrs:
		s.logger.Err(runErr).Msg("listener stopped unexpectedly")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, l := range s.listeners() {
		if err := l.shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
