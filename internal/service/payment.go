// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// ledgerBinder yields a negotiator whose approve calls are signed by the
// paying wallet.
type ledgerBinder interface {
	WithLedger(ledger adapter.LedgerAdapter) AllowanceNegotiator
}

type paymentService struct {
	vault      WalletVault
	ledger     adapter.LedgerAdapter
	spender    adapter.Spender
	negotiator ledgerBinder

	defaultSpender string
	decimals       uint8
	feeFailOpen    bool

	logger *logger.Logger
}

// NewPaymentService builds the payment flow. ledger and spender may be nil
// when the client runs offline; Pay then fails with a configuration error.
func NewPaymentService(
	vault WalletVault,
	ledger adapter.LedgerAdapter,
	spender adapter.Spender,
	negotiator ledgerBinder,
	cfg config.Ledger,
	log *logger.Logger,
) PaymentService {
	return &paymentService{
		vault:          vault,
		ledger:         ledger,
		spender:        spender,
		negotiator:     negotiator,
		defaultSpender: cfg.Spender,
		decimals:       cfg.Decimals,
		feeFailOpen:    cfg.FeeFailOpen,
		logger:         log,
	}
}

// Pay negotiates an allowance for the merchant and returns the receipt.
func (s *paymentService) Pay(ctx context.Context, req models.PaymentRequest) (models.PaymentReceipt, error) {
	receipt := models.PaymentReceipt{ItemID: req.ItemID}

	if s.ledger == nil {
		return receipt, ErrLedgerNotConfigured
	}
	if s.spender == nil {
		return receipt, ErrSpenderNotConfigured
	}

	spenderAccount := req.Spender
	if spenderAccount.Owner == "" {
		spenderAccount.Owner = s.defaultSpender
	}
	if spenderAccount.Owner == "" {
		return receipt, ErrSpenderNotConfigured
	}
	if _, err := ParseAccount(spenderAccount.Owner); err != nil {
		return receipt, err
	}

	decimals := resolveDecimals(ctx, s.ledger, s.decimals, s.logger)
	amount, err := utils.ToSubunits(req.Amount, decimals)
	if err != nil {
		return receipt, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if amount == 0 {
		return receipt, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	receipt.Amount = amount

	fee, err := s.ledger.Fee(ctx)
	if err != nil {
		if !s.feeFailOpen {
			return receipt, fmt.Errorf("%w: %w", ErrFeeUnavailable, err)
		}
		s.logger.Warn().Err(err).Msg("fee lookup failed, assuming zero fee")
		fee = 0
	}
	receipt.Fee = fee

	// transfer_from charges the fee against the allowance too
	target, ok := utils.AddChecked(amount, fee)
	if !ok {
		return receipt, ErrAmountOverflow
	}

	signer, err := walletSigner(ctx, s.vault, req.Password)
	if err != nil {
		return receipt, err
	}
	defer signer.Wipe()

	owner := models.Account{Owner: signer.Principal()}

	result, err := s.negotiator.
		WithLedger(s.ledger.WithSigner(signer)).
		Negotiate(ctx, owner, spenderAccount, target)
	receipt.NegotiationID = result.ID
	if err != nil {
		return receipt, fmt.Errorf("authorise payment for %q: %w", req.ItemID, err)
	}

	spend, err := s.spender.Spend(ctx, models.SpendRequest{
		Buyer:         owner,
		ItemID:        req.ItemID,
		Amount:        models.Nat(amount),
		NegotiationID: result.ID,
	})
	if err != nil {
		return receipt, fmt.Errorf("%w: %w", ErrSpendFailed, err)
	}
	receipt.BlockIndex = spend.BlockIndex.Uint64()

	s.logger.Info().
		Str("negotiation_id", result.ID).
		Str("item_id", req.ItemID).
		Uint64("amount", amount).
		Uint64("block_index", receipt.BlockIndex).
		Msg("payment completed")

	return receipt, nil
}

// resolveDecimals prefers the ledger metadata and falls back to the
// configured value.
func resolveDecimals(ctx context.Context, ledger adapter.LedgerAdapter, fallback uint8, log *logger.Logger) uint8 {
	meta, err := ledger.Metadata(ctx)
	if err != nil {
		log.Warn().Err(err).Uint8("decimals", fallback).Msg("metadata unavailable, using configured decimals")
		return fallback
	}
	return meta.Decimals
}
