// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaymentRequest asks the wallet to authorise and execute a purchase.
type PaymentRequest struct {
	// Spender is the account (typically a canister) allowed to pull funds.
	Spender Account
	// Amount is the human-readable price, e.g. "1.25".
	Amount string
	// ItemID identifies what is being bought.
	ItemID string
	// Password is optional when the wallet session is unlocked.
	Password string
}

// PaymentReceipt is returned once the spend completed.
type PaymentReceipt struct {
	NegotiationID string `json:"negotiation_id"`
	ItemID        string `json:"item_id"`
	Amount        uint64 `json:"amount"`
	Fee           uint64 `json:"fee"`
	BlockIndex    uint64 `json:"block_index"`
}

// SpendRequest is sent to the spender's purchase endpoint after the
// allowance has been negotiated.
type SpendRequest struct {
	Buyer         Account `json:"buyer"`
	ItemID        string  `json:"item_id"`
	Amount        Nat     `json:"amount"`
	NegotiationID string  `json:"negotiation_id"`
}

// SpendReceipt is the purchase endpoint response.
type SpendReceipt struct {
	BlockIndex Nat    `json:"block_index"`
	ItemID     string `json:"item_id"`
}
