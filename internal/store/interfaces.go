// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KVStore is an asynchronous string-keyed byte store. Each call is atomic
// with respect to the others.
type KVStore interface {
	// Get returns the value under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// WalletRepository persists the wallet aggregate under [WalletKey].
type WalletRepository interface {
	// Load returns the stored record, or an empty record when none exists.
	Load(ctx context.Context) (models.WalletRecord, error)
	// Save replaces the stored record. Partial records are rejected.
	Save(ctx context.Context, record models.WalletRecord) error
	// Clear removes the stored record.
	Clear(ctx context.Context) error
}

// LockRepository persists the session lock under [LockKey].
type LockRepository interface {
	// Get returns the stored lock, or nil when none exists.
	Get(ctx context.Context) (*models.SessionLock, error)
	// Put replaces the stored lock.
	Put(ctx context.Context, lock models.SessionLock) error
	// Delete removes the stored lock; idempotent.
	Delete(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
