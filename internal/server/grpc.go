// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	myGRPC "github.com/peridotvault/peridot-desktop-sub002/internal/handler/grpc"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: 5 * time.Minute,
			Time:              30 * time.Second,
			Timeout:           20 * time.Second,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	)
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = lis
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) unbind() {
	if g.gRPCNetListener != nil {
		_ = g.gRPCNetListener.Close()
	}
}

func (g *grpcServer) serve() error {
	g.handler.Serve()
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// shutdown reports NOT_SERVING first so health checkers drain traffic, then
// stops gracefully or hard when ctx expires.
func (g *grpcServer) shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return fmt.Errorf("grpc shutdown: %w", ctx.Err())
	}
}
