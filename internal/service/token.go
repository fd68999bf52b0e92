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

type tokenService struct {
	vault    WalletVault
	ledger   adapter.LedgerAdapter
	nonces   *NonceSource
	decimals uint8

	logger *logger.Logger
}

// NewTokenService builds the token operations. A nil ledger makes every
// call fail with [ErrLedgerNotConfigured].
func NewTokenService(vault WalletVault, ledger adapter.LedgerAdapter, nonces *NonceSource, cfg config.Ledger, log *logger.Logger) TokenService {
	if nonces == nil {
		nonces = NewNonceSource()
	}
	return &tokenService{
		vault:    vault,
		ledger:   ledger,
		nonces:   nonces,
		decimals: cfg.Decimals,
		logger:   log,
	}
}

// Metadata returns the ledger's token metadata.
func (s *tokenService) Metadata(ctx context.Context) (models.TokenMetadata, error) {
	if s.ledger == nil {
		return models.TokenMetadata{}, ErrLedgerNotConfigured
	}
	return s.ledger.Metadata(ctx)
}

// Balance returns the wallet principal's balance.
func (s *tokenService) Balance(ctx context.Context) (models.TokenAmount, error) {
	if s.ledger == nil {
		return models.TokenAmount{}, ErrLedgerNotConfigured
	}

	account, err := walletAccount(ctx, s.vault)
	if err != nil {
		return models.TokenAmount{}, err
	}

	balance, err := s.ledger.BalanceOf(ctx, account)
	if err != nil {
		return models.TokenAmount{}, fmt.Errorf("balance of %s: %w", account.Owner, err)
	}

	amount := models.TokenAmount{Subunits: balance, Decimals: s.decimals}
	if meta, metaErr := s.ledger.Metadata(ctx); metaErr == nil {
		amount.Decimals = meta.Decimals
		amount.Symbol = meta.Symbol
	} else {
		s.logger.Debug().Err(metaErr).Msg("metadata unavailable for balance formatting")
	}
	amount.Formatted = utils.FormatSubunits(balance, amount.Decimals)

	return amount, nil
}

// Transfer signs a transfer from the unlocked wallet and returns the ledger
// block index.
func (s *tokenService) Transfer(ctx context.Context, to models.Account, amount, password string) (uint64, error) {
	if s.ledger == nil {
		return 0, ErrLedgerNotConfigured
	}
	if _, err := ParseAccount(to.Owner); err != nil {
		return 0, err
	}

	decimals := resolveDecimals(ctx, s.ledger, s.decimals, s.logger)
	subunits, err := utils.ToSubunits(amount, decimals)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	if subunits == 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	signer, err := walletSigner(ctx, s.vault, password)
	if err != nil {
		return 0, err
	}
	defer signer.Wipe()

	index, err := s.ledger.WithSigner(signer).Transfer(ctx, models.TransferArgs{
		To:            to,
		Amount:        models.Nat(subunits),
		CreatedAtTime: models.NatPtr(s.nonces.Next()),
	})
	if err != nil {
		return 0, fmt.Errorf("transfer to %s: %w", to.Owner, err)
	}

	s.logger.Info().
		Str("from", signer.Principal()).
		Str("to", to.Owner).
		Uint64("amount", subunits).
		Uint64("block_index", index).
		Msg("transfer completed")

	return index, nil
}

// History pages through ledger transactions, optionally filtered to the
// wallet's own account.
func (s *tokenService) History(ctx context.Context, start, length uint64, mine bool) (models.HistoryPage, error) {
	if s.ledger == nil {
		return models.HistoryPage{}, ErrLedgerNotConfigured
	}

	var principal string
	if mine {
		account, err := walletAccount(ctx, s.vault)
		if err != nil {
			return models.HistoryPage{}, err
		}
		principal = account.Owner
	}

	blocks, logLength, err := s.ledger.Blocks(ctx, start, length)
	if err != nil {
		return models.HistoryPage{}, fmt.Errorf("fetch blocks: %w", err)
	}

	page := models.HistoryPage{LogLength: logLength, Blocks: make([]models.Block, 0, len(blocks))}
	for _, b := range blocks {
		if mine && b.From != principal && b.To != principal && b.Spender != principal {
			continue
		}
		page.Blocks = append(page.Blocks, b)
	}

	return page, nil
}
