// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/peridotvault/peridot-desktop-sub002/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// PBKDF2Iterations matches the wallet files written by the desktop app.
	PBKDF2Iterations = 150_000

	ivLen   = 12
	saltLen = 16
	keyLen  = 32
)

// secretCipher is the private implementation of [SecretCipher].
type secretCipher struct {
	iterations int
}

// NewSecretCipher constructs a [SecretCipher] using PBKDF2-HMAC-SHA256 with
// [PBKDF2Iterations] rounds and AES-256-GCM.
func NewSecretCipher() SecretCipher {
	return &secretCipher{iterations: PBKDF2Iterations}
}

// Encrypt implements [SecretCipher].
func (c *secretCipher) Encrypt(plaintext []byte, password string) (models.EncryptedBlob, error) {
	salt, err := randomBytes(saltLen)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := randomBytes(ivLen)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	key := c.deriveKey(password, salt)
	defer clear(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	return models.EncryptedBlob{
		IV:         iv,
		Salt:       salt,
		Ciphertext: gcm.Seal(nil, iv, plaintext, nil),
	}, nil
}

// Decrypt implements [SecretCipher]. The key is derived before any input
// validation so that every failure costs the same.
func (c *secretCipher) Decrypt(blob models.EncryptedBlob, password string) ([]byte, error) {
	key := c.deriveKey(password, blob.Salt)
	defer clear(key)

	if len(blob.IV) != ivLen || len(blob.Salt) != saltLen {
		return nil, ErrDecryptionFailed
	}

	gcm, err := newGCM(key)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, blob.IV, blob.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

func (c *secretCipher) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, keyLen, sha256.New)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
