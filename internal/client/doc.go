// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet command-line application.
//
// It loads the client configuration, opens the storage backend, wires the
// ledger and purchase adapters when their addresses are configured and
// exposes the wallet services as cobra commands. The tui command starts the
// Bubble Tea dashboard together with the auto-lock watcher.
package client
