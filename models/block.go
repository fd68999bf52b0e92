// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GetBlocksArgs is the icrc3_get_blocks request for one range.
type GetBlocksArgs struct {
	Start  Nat `json:"start"`
	Length Nat `json:"length"`
}

// BlockWithID is one raw block as returned by the ledger.
type BlockWithID struct {
	ID    Nat   `json:"id"`
	Block Value `json:"block"`
}

// GetBlocksResult is the icrc3_get_blocks response.
type GetBlocksResult struct {
	LogLength Nat           `json:"log_length"`
	Blocks    []BlockWithID `json:"blocks"`
}

// Block is a decoded transaction-history entry.
type Block struct {
	ID        uint64  `json:"id"`
	Timestamp uint64  `json:"timestamp"`
	Op        string  `json:"op"`
	Amount    uint64  `json:"amt"`
	Fee       *uint64 `json:"fee,omitempty"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Spender   string  `json:"spender,omitempty"`
	Memo      string  `json:"memo,omitempty"`
}
