// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the wallet business logic: the unlock session, the
// encrypted vault, ICRC-2 allowance negotiation and the payment flow built on
// top of it.
package service

import (
	"context"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionLockStore manages the persisted unlock session. The wallet is
// unlocked while a stored lock exists and has not expired.
type SessionLockStore interface {
	// IsUnlocked reads the lock on every call. An expired lock is deleted and
	// reported as locked.
	IsUnlocked(ctx context.Context) (bool, error)

	// Open checks password against the verification token and, on success,
	// persists a lock valid for ttl. ttl <= 0 selects the configured default.
	// A wrong password and a corrupted token both return [ErrInvalidPassword].
	Open(ctx context.Context, password string, verification models.EncryptedBlob, ttl time.Duration) (models.SessionLock, error)

	// Close removes the lock. Closing a locked session is not an error.
	Close(ctx context.Context) error

	// Current returns the valid lock, or nil when locked.
	Current(ctx context.Context) (*models.SessionLock, error)
}

// WalletVault owns the encrypted wallet record.
type WalletVault interface {
	// Generate derives keys and identity from seedPhrase and seals the secrets
	// under password. Nothing is persisted.
	Generate(ctx context.Context, seedPhrase, password string) (models.WalletRecord, error)

	// Import is Generate followed by Save. Any open session is closed first.
	Import(ctx context.Context, seedPhrase, password string) (models.WalletRecord, error)

	// Create generates a fresh 12-word mnemonic and imports it. The mnemonic
	// is returned once and never stored in clear.
	Create(ctx context.Context, password string) (mnemonic string, record models.WalletRecord, err error)

	// DecryptSecret opens one secret of record. While the session is unlocked
	// the session password is used and password is ignored.
	DecryptSecret(ctx context.Context, record models.WalletRecord, which models.SecretKind, password string) ([]byte, error)

	// KeyMaterial decrypts the private key and rebuilds the keypair. The
	// caller must Wipe the result.
	KeyMaterial(ctx context.Context, record models.WalletRecord, password string) (models.KeyMaterial, error)

	// Unlock opens a session for the stored wallet.
	Unlock(ctx context.Context, password string, ttl time.Duration) (models.SessionLock, error)

	// Lock closes the session.
	Lock(ctx context.Context) error

	// Status reports the stored identity and the session state.
	Status(ctx context.Context) (models.WalletStatus, error)

	// Logout closes the session and replaces the stored record with an empty
	// one, which is returned.
	Logout(ctx context.Context, record models.WalletRecord) (models.WalletRecord, error)

	Load(ctx context.Context) (models.WalletRecord, error)
	Save(ctx context.Context, record models.WalletRecord) error
}

// AllowanceNegotiator brings the ICRC-2 allowance of (owner, spender) to an
// exact target with the clear-then-set protocol against its bound ledger.
type AllowanceNegotiator interface {
	// Negotiate runs query, clear, set and verify against the bound ledger.
	// On error the result still carries the negotiation id and whatever was
	// observed before the failure.
	Negotiate(ctx context.Context, owner, spender models.Account, target uint64) (models.NegotiationResult, error)
}

// PaymentService authorises and executes purchases.
type PaymentService interface {
	// Pay negotiates an allowance of amount plus fee for req.Spender and, only
	// if that succeeds, asks the spender to pull the funds.
	Pay(ctx context.Context, req models.PaymentRequest) (models.PaymentReceipt, error)
}

// TokenService exposes read and transfer operations of the wallet's token.
type TokenService interface {
	Metadata(ctx context.Context) (models.TokenMetadata, error)

	// Balance returns the balance of the stored wallet.
	Balance(ctx context.Context) (models.TokenAmount, error)

	// Transfer sends amount (human-readable) to the given account and returns
	// the block index.
	Transfer(ctx context.Context, to models.Account, amount, password string) (uint64, error)

	// History returns decoded ledger blocks [start, start+length). With mine
	// set only blocks touching the wallet principal are kept.
	History(ctx context.Context, start, length uint64, mine bool) (models.HistoryPage, error)
}

// LockWatchJob periodically re-checks the session so that expired locks are
// cleaned up and listeners learn about auto-lock.
type LockWatchJob interface {
	// Start launches the watcher. onLock is called from the watcher goroutine
	// each time the session flips from unlocked to locked.
	Start(ctx context.Context, interval time.Duration, onLock func())

	// Stop cancels the watcher and waits for it to exit.
	Stop()
}
