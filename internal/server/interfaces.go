// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract of the simulator listeners.
type Server interface {
	// RunServer serves until ctx is cancelled, a termination signal arrives
	// or a listener fails, then shuts every listener down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops every listener.
	Shutdown(ctx context.Context) error
}

// listener is one transport managed by the server.
type listener interface {
	listen() error
	// unbind releases a bound listener that never served.
	unbind()
	serve() error
	shutdown(ctx context.Context) error
}
