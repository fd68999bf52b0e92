// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WalletStatus is what the CLI and TUI show about the local wallet.
type WalletStatus struct {
	HasWallet bool           `json:"hasWallet"`
	Identity  PublicIdentity `json:"identity"`
	Unlocked  bool           `json:"unlocked"`
	// ExpiresAt is zero while locked.
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}

// TokenAmount is a balance in subunits together with its display form.
type TokenAmount struct {
	Subunits  uint64 `json:"subunits"`
	Decimals  uint8  `json:"decimals"`
	Symbol    string `json:"symbol"`
	Formatted string `json:"formatted"`
}

// String returns e.g. "1.25 PER".
func (a TokenAmount) String() string {
	if a.Symbol == "" {
		return a.Formatted
	}
	return a.Formatted + " " + a.Symbol
}

// HistoryPage is one window of decoded ledger blocks.
type HistoryPage struct {
	Blocks    []Block `json:"blocks"`
	LogLength uint64  `json:"logLength"`
}
