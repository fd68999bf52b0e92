// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Account is an ICRC-1 account: a text principal plus an optional 32-byte
// subaccount. A nil subaccount is the default (all zero) subaccount.
type Account struct {
	Owner      string `json:"owner"`
	Subaccount []byte `json:"subaccount,omitempty"`
}

// Key returns a stable map key for the account.
func (a Account) Key() string {
	if len(a.Subaccount) == 0 {
		return a.Owner
	}
	return a.Owner + "." + string(a.Subaccount)
}

// AllowanceArgs is the icrc2_allowance request.
type AllowanceArgs struct {
	Account Account `json:"account"`
	Spender Account `json:"spender"`
}

// Allowance is the ledger-side allowance of (owner, spender).
type Allowance struct {
	Allowance Nat  `json:"allowance"`
	ExpiresAt *Nat `json:"expires_at,omitempty"`
}

// ApproveArgs is the icrc2_approve request.
type ApproveArgs struct {
	FromSubaccount    []byte  `json:"from_subaccount,omitempty"`
	Spender           Account `json:"spender"`
	Amount            Nat     `json:"amount"`
	ExpectedAllowance *Nat    `json:"expected_allowance,omitempty"`
	ExpiresAt         *Nat    `json:"expires_at,omitempty"`
	Fee               *Nat    `json:"fee,omitempty"`
	Memo              []byte  `json:"memo,omitempty"`
	CreatedAtTime     *Nat    `json:"created_at_time,omitempty"`
}

// TransferArgs is the icrc1_transfer request.
type TransferArgs struct {
	FromSubaccount []byte  `json:"from_subaccount,omitempty"`
	To             Account `json:"to"`
	Amount         Nat     `json:"amount"`
	Fee            *Nat    `json:"fee,omitempty"`
	Memo           []byte  `json:"memo,omitempty"`
	CreatedAtTime  *Nat    `json:"created_at_time,omitempty"`
}

// TransferFromArgs is the icrc2_transfer_from request issued by a spender.
type TransferFromArgs struct {
	SpenderSubaccount []byte  `json:"spender_subaccount,omitempty"`
	From              Account `json:"from"`
	To                Account `json:"to"`
	Amount            Nat     `json:"amount"`
	Fee               *Nat    `json:"fee,omitempty"`
	Memo              []byte  `json:"memo,omitempty"`
	CreatedAtTime     *Nat    `json:"created_at_time,omitempty"`
}

// TxResult is the variant result of every mutating ledger call: exactly one
// of Ok (the block index) and Err is set.
type TxResult struct {
	Ok  *Nat         `json:"Ok,omitempty"`
	Err *LedgerError `json:"Err,omitempty"`
}

// TokenMetadata is the subset of icrc1 metadata the wallet displays.
type TokenMetadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Fee      Nat    `json:"fee"`
	Logo     string `json:"logo,omitempty"`
}

// FeeResponse is the icrc1_fee response.
type FeeResponse struct {
	Fee Nat `json:"fee"`
}

// BalanceResponse is the icrc1_balance_of response.
type BalanceResponse struct {
	Balance Nat `json:"balance"`
}
