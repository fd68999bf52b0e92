// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
)

// sqlKVStore is the [KVStore] over the kv_items table of a sqlite or
// PostgreSQL database.
type sqlKVStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLKVStore wraps db. Migrations must already be applied.
func NewSQLKVStore(db *DB, log *logger.Logger) KVStore {
	return &sqlKVStore{DB: db, logger: log, now: time.Now}
}

func (s *sqlKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := buildGetQuery(s.builder, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.withRetry(ctx, func() error {
		return s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKVStore.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqlKVStore) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := buildUpsertQuery(s.builder, key, value, s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKVStore.Set").
			Str("key", key).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKVStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteQuery(s.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqlKVStore.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKVStore) Close() error {
	return s.DB.Close()
}
