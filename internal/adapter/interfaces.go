// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the ledger gateway and to the spender's purchase
// endpoint over HTTP.
//
// Transport failures are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] without knowing about HTTP. Ledger-level
// rejections surface as *models.LedgerError.
package adapter

import (
	"context"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// LedgerAdapter is the wallet's view of an ICRC-1/2/3 ledger.
type LedgerAdapter interface {
	// Allowance returns the current allowance of owner for spender.
	Allowance(ctx context.Context, owner, spender models.Account) (models.Allowance, error)

	// Approve submits icrc2_approve and returns the block index.
	// Requires a signer.
	Approve(ctx context.Context, args models.ApproveArgs) (uint64, error)

	// Fee returns the ledger transfer fee in subunits.
	Fee(ctx context.Context) (uint64, error)

	Metadata(ctx context.Context) (models.TokenMetadata, error)

	BalanceOf(ctx context.Context, account models.Account) (uint64, error)

	// Transfer submits icrc1_transfer. Requires a signer.
	Transfer(ctx context.Context, args models.TransferArgs) (uint64, error)

	// TransferFrom submits icrc2_transfer_from on behalf of a spender.
	// Requires a signer.
	TransferFrom(ctx context.Context, args models.TransferFromArgs) (uint64, error)

	// Blocks returns decoded blocks in [start, start+length) and the ledger
	// log length.
	Blocks(ctx context.Context, start, length uint64) ([]models.Block, uint64, error)

	// WithSigner returns an adapter that authenticates as signer. The
	// receiver is left untouched.
	WithSigner(signer Signer) LedgerAdapter
}

// Signer authenticates mutating requests.
type Signer interface {
	Principal() string
	PublicKey() []byte
	Sign(msg []byte) ([]byte, error)
}

// Spender completes a purchase by pulling the approved funds.
type Spender interface {
	Spend(ctx context.Context, req models.SpendRequest) (models.SpendReceipt, error)
}
