// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SecretKind selects which encrypted secret of a [WalletRecord] to open.
type SecretKind string

const (
	SecretSeed       SecretKind = "seed"
	SecretPrivateKey SecretKind = "privateKey"
)

// WalletRecord is the persisted wallet aggregate stored under the
// "wallet-data" key.
//
// The secret-bearing fields (EncryptedSeedPhrase, EncryptedPrivateKey,
// VerificationToken) and the identity fields are either all set or all nil.
// Lock mirrors the session lock at the time the record was last written and
// is informational only; the authoritative lock lives under "key-lock".
type WalletRecord struct {
	EncryptedSeedPhrase *EncryptedBlob `json:"encryptedSeedPhrase" cbor:"encryptedSeedPhrase"`
	PrincipalID         *string        `json:"principalId" cbor:"principalId"`
	AccountID           *string        `json:"accountId" cbor:"accountId"`
	EncryptedPrivateKey *EncryptedBlob `json:"encryptedPrivateKey" cbor:"encryptedPrivateKey"`
	VerificationToken   *EncryptedBlob `json:"verificationToken" cbor:"verificationToken"`
	Lock                *SessionLock   `json:"lock" cbor:"lock"`
}

// IsEmpty reports whether the record represents "no wallet".
func (w WalletRecord) IsEmpty() bool {
	return w.EncryptedSeedPhrase == nil &&
		w.PrincipalID == nil &&
		w.AccountID == nil &&
		w.EncryptedPrivateKey == nil &&
		w.VerificationToken == nil
}

// IsComplete reports whether every secret-bearing and identity field is set.
func (w WalletRecord) IsComplete() bool {
	return w.EncryptedSeedPhrase != nil &&
		w.PrincipalID != nil &&
		w.AccountID != nil &&
		w.EncryptedPrivateKey != nil &&
		w.VerificationToken != nil
}

// HasWallet is an alias of IsComplete that reads better at call sites.
func (w WalletRecord) HasWallet() bool {
	return w.IsComplete()
}

// Identity returns the public identifiers, or the zero value when the record
// holds no wallet.
func (w WalletRecord) Identity() PublicIdentity {
	if !w.IsComplete() {
		return PublicIdentity{}
	}
	return PublicIdentity{PrincipalID: *w.PrincipalID, AccountID: *w.AccountID}
}

// Secret returns the encrypted blob for kind, or nil.
func (w WalletRecord) Secret(kind SecretKind) *EncryptedBlob {
	switch kind {
	case SecretSeed:
		return w.EncryptedSeedPhrase
	case SecretPrivateKey:
		return w.EncryptedPrivateKey
	default:
		return nil
	}
}
