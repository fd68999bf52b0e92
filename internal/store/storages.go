// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// ClientStorages groups the client-side repositories over one [KVStore].
type ClientStorages struct {
	KV      KVStore
	Wallets WalletRepository
	Locks   LockRepository
}

// NewClientStorages opens the backend selected by cfg.Backend, runs
// migrations for SQL backends and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.Backend).Str("codec", cfg.Codec).Msg("creating storages...")

	codec, err := NewCodec(cfg.Codec)
	if err != nil {
		return nil, err
	}

	kv, err := NewKVStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		KV:      kv,
		Wallets: NewWalletRepository(kv, codec, log),
		Locks:   NewLockRepository(kv, codec),
	}, nil
}

// NewKVStore opens the [KVStore] for cfg.Backend.
func NewKVStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (KVStore, error) {
	switch cfg.Backend {
	case "", config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLKVStore(db, log), nil

	case config.BackendPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLKVStore(db, log), nil

	case config.BackendRedis:
		return NewConnectRedis(ctx, cfg.RedisURL, cfg.KeyPrefix, log)

	case config.BackendFile:
		return NewFileKVStore(cfg.FilePath)

	case config.BackendMemory:
		return NewMemoryKVStore(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

// Close releases the underlying store.
func (s *ClientStorages) Close() error {
	return s.KV.Close()
}
