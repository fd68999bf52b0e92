// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// ClientServices groups the services used by the CLI and the TUI.
type ClientServices struct {
	Sessions   *SessionLocks
	Vault      WalletVault
	Negotiator *Negotiator
	Payments   PaymentService
	Tokens     TokenService
	LockWatch  LockWatchJob
}

// NewClientServices wires the services over storages. ledger and spender
// may be nil when their addresses are not configured. reg receives the
// negotiation metrics; nil leaves them unregistered.
func NewClientServices(
	storages *store.ClientStorages,
	ledger adapter.LedgerAdapter,
	spender adapter.Spender,
	cfg *config.ClientConfig,
	reg prometheus.Registerer,
	log *logger.Logger,
) (*ClientServices, error) {
	wrapper, err := crypto.NewSessionKeyWrapper(cfg.App.LockSecret)
	if err != nil {
		return nil, fmt.Errorf("create session key wrapper: %w", err)
	}

	cipher := crypto.NewSecretCipher()
	nonces := NewNonceSource()

	sessions := NewSessionLockStore(storages.Locks, cipher, wrapper, cfg.App.LockTTL, log)
	vault := NewWalletVault(storages.Wallets, sessions, cipher, keys.NewDeriver(), log)
	negotiator := NewAllowanceNegotiator(ledger, cfg.Ledger.CallTimeout, nonces, metrics.NewNegotiationMetrics(reg), log)

	return &ClientServices{
		Sessions:   sessions,
		Vault:      vault,
		Negotiator: negotiator,
		Payments:   NewPaymentService(vault, ledger, spender, negotiator, cfg.Ledger, log),
		Tokens:     NewTokenService(vault, ledger, nonces, cfg.Ledger, log),
		LockWatch:  NewLockWatchJob(sessions, log),
	}, nil
}
