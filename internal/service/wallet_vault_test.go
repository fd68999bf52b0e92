// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/mock"
	"github.com/peridotvault/peridot-desktop-sub002/internal/store"
	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSeed      = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	testAccountID = "f24b889e8efba3d8008512e5f928af25be0fea33c9a44e161649f12912907cbd"
	testPassword  = "correct horse"
	testLockKey   = "process-lock-secret"
)

// newRealVault builds a vault over an in-memory store with the production cipher,
// session key wrapper and deriver.
func newRealVault(t *testing.T) (*walletVault, *SessionLocks, *store.ClientStorages) {
	t.Helper()
	storages, err := store.NewClientStorages(context.Background(), config.Storage{
		Backend: config.BackendMemory,
		Codec:   config.DefaultCodec,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	wrapper, err := crypto.NewSessionKeyWrapper(testLockKey)
	require.NoError(t, err)

	cipher := crypto.NewSecretCipher()
	sessions := NewSessionLockStore(storages.Locks, cipher, wrapper, time.Minute, logger.Nop())
	vault := NewWalletVault(storages.Wallets, sessions, cipher, keys.NewDeriver(), logger.Nop()).(*walletVault)

	return vault, sessions, storages
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestWalletVault_Generate_KnownVector(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Generate(ctx, "  "+testSeed+"\n", testPassword)
	require.NoError(t, err)

	assert.True(t, record.IsComplete())
	assert.Nil(t, record.Lock)
	assert.Equal(t, testOwner.Owner, *record.PrincipalID)
	assert.Equal(t, testAccountID, *record.AccountID)

	// Generate does not persist
	stored, err := vault.Load(ctx)
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())

	seed, err := vault.DecryptSecret(ctx, record, models.SecretSeed, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testSeed, string(seed), "seed is stored normalised")
}

func TestWalletVault_Generate_FreshCiphertextSameIdentity(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	a, err := vault.Generate(ctx, testSeed, testPassword)
	require.NoError(t, err)
	b, err := vault.Generate(ctx, testSeed, testPassword)
	require.NoError(t, err)

	assert.Equal(t, a.Identity(), b.Identity())
	assert.NotEqual(t, a.EncryptedSeedPhrase.Salt, b.EncryptedSeedPhrase.Salt)
	assert.NotEqual(t, a.EncryptedPrivateKey.Ciphertext, b.EncryptedPrivateKey.Ciphertext)
}

func TestWalletVault_Generate_InputErrors(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	_, err := vault.Generate(ctx, "abandon abandon", testPassword)
	assert.ErrorIs(t, err, keys.ErrInvalidSeed)

	_, err = vault.Generate(ctx, testSeed, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestWalletVault_Generate_NeverPartial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deriver := mock.NewMockDeriver(ctrl)
	cipher := mock.NewMockSecretCipher(ctrl)
	vault := NewWalletVault(nil, nil, cipher, deriver, logger.Nop())

	km, err := keys.DeriveKeyMaterial(testSeed)
	require.NoError(t, err)

	deriver.EXPECT().ValidateSeed(testSeed).Return(true)
	deriver.EXPECT().DeriveKeyMaterial(testSeed).Return(km, nil)
	deriver.EXPECT().DeriveIdentity(gomock.Any()).Return(models.PublicIdentity{PrincipalID: "p", AccountID: "a"}, nil)
	gomock.InOrder(
		cipher.EXPECT().Encrypt(gomock.Any(), testPassword).Return(models.EncryptedBlob{Ciphertext: []byte{1}}, nil),
		cipher.EXPECT().Encrypt(gomock.Any(), testPassword).Return(models.EncryptedBlob{}, errors.New("entropy exhausted")),
	)

	record, err := vault.Generate(context.Background(), testSeed, testPassword)
	require.Error(t, err)
	assert.True(t, record.IsEmpty())
}

// ── Import / Create ──────────────────────────────────────────────────────────

func TestWalletVault_Import_PersistsAndClosesSession(t *testing.T) {
	vault, sessions, _ := newRealVault(t)
	ctx := context.Background()

	_, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	_, err = vault.Unlock(ctx, testPassword, 0)
	require.NoError(t, err)

	record, err := vault.Import(ctx, testSeed, "another password")
	require.NoError(t, err)

	unlocked, err := sessions.IsUnlocked(ctx)
	require.NoError(t, err)
	assert.False(t, unlocked)

	stored, err := vault.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, stored)
}

func TestWalletVault_Create(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	mnemonic, record, err := vault.Create(ctx, testPassword)
	require.NoError(t, err)
	assert.True(t, keys.ValidateSeed(mnemonic))

	km, err := keys.DeriveKeyMaterial(mnemonic)
	require.NoError(t, err)
	identity, err := keys.DeriveIdentity(km)
	require.NoError(t, err)
	assert.Equal(t, identity, record.Identity())

	_, _, err = vault.Create(ctx, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

// ── DecryptSecret / sessions ─────────────────────────────────────────────────

func TestWalletVault_DecryptSecret_Locked(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)

	_, err = vault.DecryptSecret(ctx, record, models.SecretSeed, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	_, err = vault.DecryptSecret(ctx, record, models.SecretSeed, "wrong")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	_, err = vault.DecryptSecret(ctx, models.WalletRecord{}, models.SecretSeed, testPassword)
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestWalletVault_DecryptSecret_UsesSessionPassword(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	_, err = vault.Unlock(ctx, testPassword, time.Minute)
	require.NoError(t, err)

	for _, supplied := range []string{"", "wrong"} {
		seed, err := vault.DecryptSecret(ctx, record, models.SecretSeed, supplied)
		require.NoError(t, err, "supplied %q", supplied)
		assert.Equal(t, testSeed, string(seed))
	}
}

func TestWalletVault_DecryptSecret_ExpiredSessionRequiresPassword(t *testing.T) {
	vault, sessions, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	_, err = vault.Unlock(ctx, testPassword, time.Minute)
	require.NoError(t, err)

	sessions.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = vault.DecryptSecret(ctx, record, models.SecretSeed, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestWalletVault_DecryptSecret_ForeignSessionIsDropped(t *testing.T) {
	vault, _, storages := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)

	// a session written by a process with another lock secret
	otherWrapper, err := crypto.NewSessionKeyWrapper("other-secret")
	require.NoError(t, err)
	other := NewSessionLockStore(storages.Locks, crypto.NewSecretCipher(), otherWrapper, time.Minute, logger.Nop())
	_, err = other.Open(ctx, testPassword, *record.VerificationToken, time.Minute)
	require.NoError(t, err)

	_, err = vault.DecryptSecret(ctx, record, models.SecretSeed, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	lock, err := storages.Locks.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, lock)
}

func TestWalletVault_DecryptSecret_CorruptedSessionFallsBackToPassword(t *testing.T) {
	vault, _, storages := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	require.NoError(t, storages.KV.Set(ctx, store.LockKey, []byte("{not json")))

	_, err = vault.DecryptSecret(ctx, record, models.SecretSeed, "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	seed, err := vault.DecryptSecret(ctx, record, models.SecretSeed, testPassword)
	require.NoError(t, err)
	assert.Equal(t, testSeed, string(seed))

	_, err = storages.KV.Get(ctx, store.LockKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "corrupted lock is removed")

	_, err = vault.Unlock(ctx, testPassword, time.Minute)
	require.NoError(t, err, "a new session can be opened afterwards")
}

func TestWalletVault_KeyMaterial(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)

	got, err := vault.KeyMaterial(ctx, record, testPassword)
	require.NoError(t, err)
	defer got.Wipe()

	want, err := keys.DeriveKeyMaterial(testSeed)
	require.NoError(t, err)
	assert.Equal(t, want.PrivateKey, got.PrivateKey)
	assert.Equal(t, want.PublicKey, got.PublicKey)
}

// ── Unlock / Lock / Status / Logout ──────────────────────────────────────────

func TestWalletVault_Unlock(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	_, err := vault.Unlock(ctx, testPassword, 0)
	assert.ErrorIs(t, err, ErrWalletNotFound)

	_, err = vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)

	_, err = vault.Unlock(ctx, "wrong", 0)
	assert.ErrorIs(t, err, ErrInvalidPassword)

	lock, err := vault.Unlock(ctx, testPassword, 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), lock.ExpiresAtTime(), 5*time.Second)
}

func TestWalletVault_Status(t *testing.T) {
	vault, _, _ := newRealVault(t)
	ctx := context.Background()

	status, err := vault.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.HasWallet)
	assert.False(t, status.Unlocked)

	_, err = vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	_, err = vault.Unlock(ctx, testPassword, time.Minute)
	require.NoError(t, err)

	status, err = vault.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.HasWallet)
	assert.True(t, status.Unlocked)
	assert.Equal(t, testAccountID, status.Identity.AccountID)
	assert.False(t, status.ExpiresAt.IsZero())

	require.NoError(t, vault.Lock(ctx))
	status, err = vault.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Unlocked)
	assert.True(t, status.ExpiresAt.IsZero())
}

func TestWalletVault_Logout(t *testing.T) {
	vault, sessions, _ := newRealVault(t)
	ctx := context.Background()

	record, err := vault.Import(ctx, testSeed, testPassword)
	require.NoError(t, err)
	_, err = vault.Unlock(ctx, testPassword, time.Minute)
	require.NoError(t, err)

	cleared, err := vault.Logout(ctx, record)
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
	assert.Nil(t, cleared.Lock)

	stored, err := vault.Load(ctx)
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())

	unlocked, err := sessions.IsUnlocked(ctx)
	require.NoError(t, err)
	assert.False(t, unlocked)
}
