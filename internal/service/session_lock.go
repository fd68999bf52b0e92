// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/store"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// VerificationSentinel is the plaintext sealed into every verification token.
const VerificationSentinel = "VERIFY"

// SessionLocks is the [SessionLockStore] backed by a [store.LockRepository].
type SessionLocks struct {
	locks      store.LockRepository
	cipher     crypto.SecretCipher
	wrapper    crypto.SessionKeyWrapper
	defaultTTL time.Duration
	now        func() time.Time

	logger *logger.Logger
}

// NewSessionLockStore builds the session store. defaultTTL <= 0 falls back to
// [config.DefaultLockTTL].
func NewSessionLockStore(
	locks store.LockRepository,
	cipher crypto.SecretCipher,
	wrapper crypto.SessionKeyWrapper,
	defaultTTL time.Duration,
	log *logger.Logger,
) *SessionLocks {
	if defaultTTL <= 0 {
		defaultTTL = config.DefaultLockTTL
	}
	return &SessionLocks{
		locks:      locks,
		cipher:     cipher,
		wrapper:    wrapper,
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     log,
	}
}

// IsUnlocked reports whether a valid session lock exists.
func (s *SessionLocks) IsUnlocked(ctx context.Context) (bool, error) {
	lock, err := s.Current(ctx)
	if err != nil {
		return false, err
	}
	return lock != nil, nil
}

// Current returns the active lock, or nil when the wallet is locked.
// Expired and unreadable locks are deleted on the way.
func (s *SessionLocks) Current(ctx context.Context) (*models.SessionLock, error) {
	lock, err := s.locks.Get(ctx)
	if errors.Is(err, store.ErrCorruptedRecord) {
		// an unreadable lock is no lock
		s.logger.Warn().Err(err).Msg("dropping corrupted session lock")
		if err = s.locks.Delete(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to delete corrupted session lock")
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session lock: %w", err)
	}
	if lock == nil {
		return nil, nil
	}

	if !lock.IsValidAt(s.now()) {
		// a concurrent Close may already have removed it; Delete is idempotent
		if err = s.locks.Delete(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to delete expired session lock")
		}
		s.logger.Debug().Time("expired_at", lock.ExpiresAtTime()).Msg("session lock expired")
		return nil, nil
	}

	return lock, nil
}

// Open verifies password against verification and stores a lock that
// expires after ttl, or after the default TTL when ttl is not positive.
func (s *SessionLocks) Open(ctx context.Context, password string, verification models.EncryptedBlob, ttl time.Duration) (models.SessionLock, error) {
	if password == "" {
		return models.SessionLock{}, ErrPasswordRequired
	}

	plain, err := s.cipher.Decrypt(verification, password)
	if err != nil || string(plain) != VerificationSentinel {
		s.logger.Debug().Msg("verification token rejected")
		return models.SessionLock{}, ErrInvalidPassword
	}

	wrapped, err := s.wrapper.Wrap(password)
	if err != nil {
		return models.SessionLock{}, fmt.Errorf("wrap session password: %w", err)
	}

	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	lock := models.SessionLock{
		ExpiresAt:       s.now().Add(ttl).UnixMilli(),
		WrappedPassword: wrapped,
	}
	if err = s.locks.Put(ctx, lock); err != nil {
		return models.SessionLock{}, fmt.Errorf("persist session lock: %w", err)
	}

	s.logger.Info().Time("expires_at", lock.ExpiresAtTime()).Msg("wallet unlocked")
	return lock, nil
}

// Close removes the lock. Closing an already locked wallet is not an error.
func (s *SessionLocks) Close(ctx context.Context) error {
	if err := s.locks.Delete(ctx); err != nil {
		return fmt.Errorf("delete session lock: %w", err)
	}
	s.logger.Info().Msg("wallet locked")
	return nil
}

// unwrapPassword recovers the unlock password held by lock.
func (s *SessionLocks) unwrapPassword(lock *models.SessionLock) (string, error) {
	return s.wrapper.Unwrap(lock.WrappedPassword)
}
