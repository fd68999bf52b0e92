// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// dialHandler serves h on an in-memory listener and returns a health client.
func dialHandler(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_Lifecycle(t *testing.T) {
	h := NewHandler(ledger.New(ledger.Config{}), logger.Nop())
	client := dialHandler(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, LedgerService))

	h.Serve()
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, LedgerService))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, LedgerService))
}

func TestHandler_WithoutLedgerStaysNotServing(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := dialHandler(t, h)

	h.Serve()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, LedgerService))
}

func TestHandler_UnknownService(t *testing.T) {
	h := NewHandler(ledger.New(ledger.Config{}), logger.Nop())
	client := dialHandler(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)
}
