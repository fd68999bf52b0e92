// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

type lockRepository struct {
	kv    KVStore
	codec Codec
}

// NewLockRepository stores the session lock in kv under [LockKey].
func NewLockRepository(kv KVStore, codec Codec) LockRepository {
	return &lockRepository{kv: kv, codec: codec}
}

func (r *lockRepository) Get(ctx context.Context) (*models.SessionLock, error) {
	raw, err := r.kv.Get(ctx, LockKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session lock: %w", err)
	}

	var lock models.SessionLock
	if err := r.codec.Unmarshal(raw, &lock); err != nil {
		return nil, fmt.Errorf("%w: session lock: %w", ErrCorruptedRecord, err)
	}

	return &lock, nil
}

func (r *lockRepository) Put(ctx context.Context, lock models.SessionLock) error {
	raw, err := r.codec.Marshal(lock)
	if err != nil {
		return fmt.Errorf("encode session lock: %w", err)
	}

	if err := r.kv.Set(ctx, LockKey, raw); err != nil {
		return fmt.Errorf("save session lock: %w", err)
	}
	return nil
}

func (r *lockRepository) Delete(ctx context.Context) error {
	if err := r.kv.Delete(ctx, LockKey); err != nil {
		return fmt.Errorf("delete session lock: %w", err)
	}
	return nil
}
