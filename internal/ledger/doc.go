// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger is an in-memory ICRC-1/ICRC-2/ICRC-3 token ledger used by
// the gateway simulator.
//
// It implements the parts of the standards the wallet depends on: balances,
// allowances guarded by expected_allowance, fee checks, transaction
// deduplication on created_at_time, and a block log encoded as ICRC-3
// values. Ledger-level rejections are returned as *models.LedgerError.
package ledger
