// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// walletSigner loads the stored wallet and returns a signer over its key.
// The caller must Wipe the signer.
func walletSigner(ctx context.Context, vault WalletVault, password string) (*keys.KeySigner, error) {
	record, err := vault.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !record.HasWallet() {
		return nil, ErrWalletNotFound
	}

	km, err := vault.KeyMaterial(ctx, record, password)
	if err != nil {
		return nil, err
	}
	defer km.Wipe()

	return keys.NewKeySigner(km)
}

// walletAccount returns the default account of the stored wallet.
func walletAccount(ctx context.Context, vault WalletVault) (models.Account, error) {
	record, err := vault.Load(ctx)
	if err != nil {
		return models.Account{}, err
	}
	if !record.HasWallet() {
		return models.Account{}, ErrWalletNotFound
	}
	return models.Account{Owner: *record.PrincipalID}, nil
}

// ParseAccount validates a textual principal and returns its default
// account.
func ParseAccount(principal string) (models.Account, error) {
	if _, err := keys.DecodePrincipal(principal); err != nil {
		return models.Account{}, fmt.Errorf("%w: %q", keys.ErrInvalidPrincipal, principal)
	}
	return models.Account{Owner: principal}, nil
}
