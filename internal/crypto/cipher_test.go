// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"testing"

	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SecretCipher ─────────────────────────────────────────────────────────────

func TestSecretCipher_RoundTrip(t *testing.T) {
	c := NewSecretCipher()

	for _, plaintext := range [][]byte{
		[]byte("VERIFY"),
		[]byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"),
		{},
	} {
		blob, err := c.Encrypt(plaintext, "p@ss")
		require.NoError(t, err)

		assert.Len(t, blob.IV, 12)
		assert.Len(t, blob.Salt, 16)

		got, err := c.Decrypt(blob, "p@ss")
		require.NoError(t, err)
		assert.True(t, bytes.Equal(plaintext, got))
	}
}

func TestSecretCipher_FreshSaltAndIV(t *testing.T) {
	c := NewSecretCipher()

	a, err := c.Encrypt([]byte("same"), "pw")
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same"), "pw")
	require.NoError(t, err)

	assert.NotEqual(t, a.IV, b.IV)
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Ciphertext, b.Ciphertext)
}

func TestSecretCipher_WrongPassword(t *testing.T) {
	c := NewSecretCipher()

	blob, err := c.Encrypt([]byte("VERIFY"), "right")
	require.NoError(t, err)

	_, err = c.Decrypt(blob, "wrong")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestSecretCipher_TamperDetection(t *testing.T) {
	c := NewSecretCipher()

	blob, err := c.Encrypt([]byte("secret"), "pw")
	require.NoError(t, err)

	flip := func(b []byte) []byte {
		out := append([]byte(nil), b...)
		out[0] ^= 0x01
		return out
	}

	tests := []struct {
		name string
		blob models.EncryptedBlob
	}{
		{name: "ciphertext", blob: models.EncryptedBlob{IV: blob.IV, Salt: blob.Salt, Ciphertext: flip(blob.Ciphertext)}},
		{name: "iv", blob: models.EncryptedBlob{IV: flip(blob.IV), Salt: blob.Salt, Ciphertext: blob.Ciphertext}},
		{name: "salt", blob: models.EncryptedBlob{IV: blob.IV, Salt: flip(blob.Salt), Ciphertext: blob.Ciphertext}},
		{name: "short iv", blob: models.EncryptedBlob{IV: blob.IV[:8], Salt: blob.Salt, Ciphertext: blob.Ciphertext}},
		{name: "short salt", blob: models.EncryptedBlob{IV: blob.IV, Salt: blob.Salt[:4], Ciphertext: blob.Ciphertext}},
		{name: "empty", blob: models.EncryptedBlob{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.blob, "pw")
			assert.Equal(t, ErrDecryptionFailed, err)
		})
	}
}

// ── SessionKeyWrapper ────────────────────────────────────────────────────────

func TestSessionKeyWrapper_RoundTrip(t *testing.T) {
	w, err := NewSessionKeyWrapper("process-secret")
	require.NoError(t, err)

	wrapped, err := w.Wrap("hunter2")
	require.NoError(t, err)
	assert.Len(t, wrapped.IV, 12)
	assert.NotContains(t, string(wrapped.Ciphertext), "hunter2")

	got, err := w.Unwrap(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestSessionKeyWrapper_SameSecretSameKey(t *testing.T) {
	a, err := NewSessionKeyWrapper("process-secret")
	require.NoError(t, err)
	b, err := NewSessionKeyWrapper("process-secret")
	require.NoError(t, err)

	wrapped, err := a.Wrap("pw")
	require.NoError(t, err)

	got, err := b.Unwrap(wrapped)
	require.NoError(t, err)
	assert.Equal(t, "pw", got)
}

func TestSessionKeyWrapper_DifferentSecretFails(t *testing.T) {
	a, err := NewSessionKeyWrapper("secret-a")
	require.NoError(t, err)
	b, err := NewSessionKeyWrapper("secret-b")
	require.NoError(t, err)

	wrapped, err := a.Wrap("pw")
	require.NoError(t, err)

	_, err = b.Unwrap(wrapped)
	assert.ErrorIs(t, err, ErrDecryptionFailed)

	_, err = a.Unwrap(models.WrappedPassword{IV: []byte{1}, Ciphertext: wrapped.Ciphertext})
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestNewSessionKeyWrapper_RequiresSecret(t *testing.T) {
	_, err := NewSessionKeyWrapper("")
	assert.ErrorIs(t, err, ErrMissingLockSecret)
}
