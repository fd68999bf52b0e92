// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the simulator's HTTP gateway and gRPC health
// listeners and shuts them down together on a signal or context
// cancellation.
package server
