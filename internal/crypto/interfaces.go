// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/peridotvault/peridot-desktop-sub002/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SecretCipher seals secrets under a user password.
//
// Scheme:
//
//	salt, iv = crypto/rand (16 and 12 bytes)          fresh per call
//	key      = PBKDF2-HMAC-SHA256(password, salt)      150 000 rounds, 32 bytes
//	data     = AES-256-GCM(key, iv, plaintext)
//
// The salt and IV are stored next to the ciphertext in [models.EncryptedBlob].
type SecretCipher interface {
	// Encrypt seals plaintext. It fails only if the system randomness source
	// fails.
	Encrypt(plaintext []byte, password string) (models.EncryptedBlob, error)

	// Decrypt opens blob. Wrong password, tampering and malformed input all
	// return the same [ErrDecryptionFailed].
	Decrypt(blob models.EncryptedBlob, password string) ([]byte, error)
}

// SessionKeyWrapper seals the unlock password under a key derived once per
// process from the application lock secret.
//
// Anyone holding both the process secret and a persisted session lock can
// recover the password until the lock expires. The lock TTL bounds that
// window.
type SessionKeyWrapper interface {
	Wrap(password string) (models.WrappedPassword, error)
	Unwrap(wrapped models.WrappedPassword) (string, error)
}
