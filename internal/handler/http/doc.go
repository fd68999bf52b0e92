// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the ledger simulator's HTTP gateway.
//
// Routes mirror the wallet's ledger adapter: ICRC-1/2/3 queries and signed
// mutating calls plus the purchase endpoint of the simulated spender.
// Request tracing, access logging, metrics, compression, bearer
// authentication, body integrity and request signatures are handled by
// middleware before a call reaches the in-memory ledger.
package http
