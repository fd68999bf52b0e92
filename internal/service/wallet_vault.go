// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/store"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

type walletVault struct {
	wallets  store.WalletRepository
	sessions *SessionLocks
	cipher   crypto.SecretCipher
	deriver  keys.Deriver

	logger *logger.Logger
}

// NewWalletVault wires the vault to its repository and session store.
func NewWalletVault(
	wallets store.WalletRepository,
	sessions *SessionLocks,
	cipher crypto.SecretCipher,
	deriver keys.Deriver,
	log *logger.Logger,
) WalletVault {
	return &walletVault{
		wallets:  wallets,
		sessions: sessions,
		cipher:   cipher,
		deriver:  deriver,
		logger:   log,
	}
}

// Generate derives keys from seedPhrase, encrypts them under password and
// returns the record without persisting it.
func (v *walletVault) Generate(ctx context.Context, seedPhrase, password string) (models.WalletRecord, error) {
	if password == "" {
		return models.WalletRecord{}, ErrPasswordRequired
	}

	seed := keys.NormalizeSeed(seedPhrase)
	if !v.deriver.ValidateSeed(seed) {
		return models.WalletRecord{}, keys.ErrInvalidSeed
	}

	km, err := v.deriver.DeriveKeyMaterial(seed)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("derive key material: %w", err)
	}
	defer km.Wipe()

	identity, err := v.deriver.DeriveIdentity(km)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("derive identity: %w", err)
	}

	privHex := []byte(hex.EncodeToString(km.PrivateKey))
	defer clear(privHex)

	encSeed, err := v.cipher.Encrypt([]byte(seed), password)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("encrypt seed phrase: %w", err)
	}
	encPriv, err := v.cipher.Encrypt(privHex, password)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("encrypt private key: %w", err)
	}
	verification, err := v.cipher.Encrypt([]byte(VerificationSentinel), password)
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("encrypt verification token: %w", err)
	}

	return models.WalletRecord{
		EncryptedSeedPhrase: &encSeed,
		PrincipalID:         &identity.PrincipalID,
		AccountID:           &identity.AccountID,
		EncryptedPrivateKey: &encPriv,
		VerificationToken:   &verification,
	}, nil
}

// Import generates a record from an existing phrase and saves it.
func (v *walletVault) Import(ctx context.Context, seedPhrase, password string) (models.WalletRecord, error) {
	record, err := v.Generate(ctx, seedPhrase, password)
	if err != nil {
		return models.WalletRecord{}, err
	}

	// the previous session password may not open the new record
	if err = v.sessions.Close(ctx); err != nil {
		return models.WalletRecord{}, err
	}
	if err = v.wallets.Save(ctx, record); err != nil {
		return models.WalletRecord{}, err
	}

	v.logger.Info().Str("principal", *record.PrincipalID).Msg("wallet imported")
	return record, nil
}

// Create draws a fresh mnemonic, imports it and returns the phrase once.
func (v *walletVault) Create(ctx context.Context, password string) (string, models.WalletRecord, error) {
	if password == "" {
		return "", models.WalletRecord{}, ErrPasswordRequired
	}

	mnemonic, err := v.deriver.GenerateMnemonic()
	if err != nil {
		return "", models.WalletRecord{}, fmt.Errorf("generate mnemonic: %w", err)
	}

	record, err := v.Import(ctx, mnemonic, password)
	if err != nil {
		return "", models.WalletRecord{}, err
	}
	return mnemonic, record, nil
}

// DecryptSecret opens one encrypted field of record. An active session
// supplies the password when the caller passes none.
func (v *walletVault) DecryptSecret(ctx context.Context, record models.WalletRecord, which models.SecretKind, password string) ([]byte, error) {
	blob := record.Secret(which)
	if blob == nil {
		return nil, ErrWalletNotFound
	}

	password, err := v.resolvePassword(ctx, password)
	if err != nil {
		return nil, err
	}

	return v.cipher.Decrypt(*blob, password)
}

// resolvePassword prefers the session password over the supplied one.
func (v *walletVault) resolvePassword(ctx context.Context, password string) (string, error) {
	lock, err := v.sessions.Current(ctx)
	if err != nil {
		return "", err
	}

	if lock != nil {
		sessionPassword, unwrapErr := v.sessions.unwrapPassword(lock)
		if unwrapErr == nil {
			return sessionPassword, nil
		}
		// lock written under another process secret: unusable, drop it
		v.logger.Warn().Err(unwrapErr).Msg("session lock cannot be unwrapped, closing session")
		if err = v.sessions.Close(ctx); err != nil {
			return "", err
		}
	}

	if password == "" {
		return "", ErrPasswordRequired
	}
	return password, nil
}

// KeyMaterial rebuilds the signing identity from the decrypted private key.
func (v *walletVault) KeyMaterial(ctx context.Context, record models.WalletRecord, password string) (models.KeyMaterial, error) {
	privHex, err := v.DecryptSecret(ctx, record, models.SecretPrivateKey, password)
	if err != nil {
		return models.KeyMaterial{}, err
	}
	defer clear(privHex)

	priv := make([]byte, hex.DecodedLen(len(privHex)))
	defer clear(priv)
	if _, err = hex.Decode(priv, privHex); err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: private key is not hex", store.ErrCorruptedRecord)
	}

	return v.deriver.KeyMaterialFromPrivateKey(priv)
}

// Unlock checks password against the verification token and opens a
// session for ttl.
func (v *walletVault) Unlock(ctx context.Context, password string, ttl time.Duration) (models.SessionLock, error) {
	record, err := v.Load(ctx)
	if err != nil {
		return models.SessionLock{}, err
	}
	if !record.HasWallet() {
		return models.SessionLock{}, ErrWalletNotFound
	}

	return v.sessions.Open(ctx, password, *record.VerificationToken, ttl)
}

// Lock ends the session.
func (v *walletVault) Lock(ctx context.Context) error {
	return v.sessions.Close(ctx)
}

// Status reports whether a wallet exists and whether it is unlocked.
func (v *walletVault) Status(ctx context.Context) (models.WalletStatus, error) {
	record, err := v.Load(ctx)
	if err != nil {
		return models.WalletStatus{}, err
	}

	status := models.WalletStatus{
		HasWallet: record.HasWallet(),
		Identity:  record.Identity(),
	}

	lock, err := v.sessions.Current(ctx)
	if err != nil {
		return models.WalletStatus{}, err
	}
	if lock != nil {
		status.Unlocked = true
		status.ExpiresAt = lock.ExpiresAtTime()
	}

	return status, nil
}

// Logout locks the session and forgets the stored wallet.
func (v *walletVault) Logout(ctx context.Context, record models.WalletRecord) (models.WalletRecord, error) {
	if err := v.sessions.Close(ctx); err != nil {
		return record, err
	}
	if err := v.wallets.Clear(ctx); err != nil {
		return record, err
	}

	if record.PrincipalID != nil {
		v.logger.Info().Str("principal", *record.PrincipalID).Msg("wallet logged out")
	}
	return models.WalletRecord{}, nil
}

// Load returns the stored wallet record.
func (v *walletVault) Load(ctx context.Context) (models.WalletRecord, error) {
	return v.wallets.Load(ctx)
}

// Save persists record.
func (v *walletVault) Save(ctx context.Context, record models.WalletRecord) error {
	return v.wallets.Save(ctx, record)
}
