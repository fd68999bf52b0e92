// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionLock is the persisted unlock session. The wallet counts as unlocked
// while now <= ExpiresAt; afterwards the record is equivalent to no record.
type SessionLock struct {
	// ExpiresAt is the expiry instant in Unix milliseconds.
	ExpiresAt       int64           `json:"expiresAt" cbor:"expiresAt"`
	WrappedPassword WrappedPassword `json:"wrappedPassword" cbor:"wrappedPassword"`
}

// IsValidAt reports whether the lock is still open at now.
func (l *SessionLock) IsValidAt(now time.Time) bool {
	if l == nil {
		return false
	}
	return now.UnixMilli() <= l.ExpiresAt
}

// ExpiresAtTime returns ExpiresAt as a time.Time.
func (l *SessionLock) ExpiresAtTime() time.Time {
	return time.UnixMilli(l.ExpiresAt)
}

// Remaining returns the time left until expiry, or zero if already expired.
func (l *SessionLock) Remaining(now time.Time) time.Duration {
	if !l.IsValidAt(now) {
		return 0
	}
	return l.ExpiresAtTime().Sub(now)
}
