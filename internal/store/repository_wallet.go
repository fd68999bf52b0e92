// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Persistence keys shared by every backend.
const (
	WalletKey = "wallet-data"
	LockKey   = "key-lock"
)

type walletRepository struct {
	kv     KVStore
	codec  Codec
	logger *logger.Logger
}

// NewWalletRepository stores the wallet record in kv under [WalletKey].
func NewWalletRepository(kv KVStore, codec Codec, log *logger.Logger) WalletRepository {
	return &walletRepository{kv: kv, codec: codec, logger: log}
}

func (r *walletRepository) Load(ctx context.Context) (models.WalletRecord, error) {
	raw, err := r.kv.Get(ctx, WalletKey)
	if errors.Is(err, ErrKeyNotFound) {
		return models.WalletRecord{}, nil
	}
	if err != nil {
		return models.WalletRecord{}, fmt.Errorf("load wallet record: %w", err)
	}

	var record models.WalletRecord
	if err := r.codec.Unmarshal(raw, &record); err != nil {
		r.logger.Err(err).
			Str("func", "walletRepository.Load").
			Str("codec", r.codec.Name()).
			Msg("stored wallet record cannot be decoded")
		return models.WalletRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	if !record.IsEmpty() && !record.IsComplete() {
		r.logger.Error().
			Str("func", "walletRepository.Load").
			Msg("stored wallet record is partially populated")
		return models.WalletRecord{}, fmt.Errorf("%w: partial wallet record", ErrCorruptedRecord)
	}

	return record, nil
}

func (r *walletRepository) Save(ctx context.Context, record models.WalletRecord) error {
	if !record.IsEmpty() && !record.IsComplete() {
		return fmt.Errorf("%w: refusing to save partial wallet record", ErrCorruptedRecord)
	}

	raw, err := r.codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode wallet record: %w", err)
	}

	if err := r.kv.Set(ctx, WalletKey, raw); err != nil {
		return fmt.Errorf("save wallet record: %w", err)
	}

	return nil
}

func (r *walletRepository) Clear(ctx context.Context) error {
	if err := r.kv.Delete(ctx, WalletKey); err != nil {
		return fmt.Errorf("clear wallet record: %w", err)
	}
	return nil
}
