// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/models"
	"golang.org/x/crypto/argon2"
)

// sessionKeySalt domain-separates the session key from any other use of the
// lock secret.
var sessionKeySalt = []byte("peridot-vault/session-lock/v1")

// sessionKeyWrapper is the private implementation of [SessionKeyWrapper].
type sessionKeyWrapper struct {
	key []byte
}

// argon2Params are the Argon2id costs for the session key:
// 1 pass, 64 MiB, 4 lanes, 32-byte output.
var argon2Params = struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}{
	time:    1,
	memory:  64 * 1024,
	threads: 4,
	keyLen:  32,
}

// NewSessionKeyWrapper derives the 256-bit session key from secret with
// Argon2id. The derivation runs once; Wrap and Unwrap are cheap afterwards.
func NewSessionKeyWrapper(secret string) (SessionKeyWrapper, error) {
	if secret == "" {
		return nil, ErrMissingLockSecret
	}

	key := argon2.IDKey(
		[]byte(secret),
		sessionKeySalt,
		argon2Params.time,
		argon2Params.memory,
		argon2Params.threads,
		argon2Params.keyLen,
	)

	return &sessionKeyWrapper{key: key}, nil
}

// Wrap implements [SessionKeyWrapper].
func (s *sessionKeyWrapper) Wrap(password string) (models.WrappedPassword, error) {
	iv, err := randomBytes(ivLen)
	if err != nil {
		return models.WrappedPassword{}, fmt.Errorf("generate iv: %w", err)
	}

	gcm, err := newGCM(s.key)
	if err != nil {
		return models.WrappedPassword{}, err
	}

	return models.WrappedPassword{
		IV:         iv,
		Ciphertext: gcm.Seal(nil, iv, []byte(password), nil),
	}, nil
}

// Unwrap implements [SessionKeyWrapper].
func (s *sessionKeyWrapper) Unwrap(wrapped models.WrappedPassword) (string, error) {
	if len(wrapped.IV) != ivLen {
		return "", ErrDecryptionFailed
	}

	gcm, err := newGCM(s.key)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, wrapped.IV, wrapped.Ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}
