// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// KeyMaterial is the secp256k1 keypair derived from a mnemonic.
// It lives in memory only for the duration of a cryptographic operation;
// callers must Wipe it once done.
type KeyMaterial struct {
	// PrivateKey is the 32-byte scalar.
	PrivateKey []byte
	// PublicKey is the 65-byte uncompressed SEC1 encoding.
	PublicKey []byte
}

// Wipe zeroes both key slices in place.
func (k *KeyMaterial) Wipe() {
	if k == nil {
		return
	}
	clear(k.PrivateKey)
	clear(k.PublicKey)
}

// PublicIdentity holds the shareable identifiers of a wallet.
type PublicIdentity struct {
	PrincipalID string `json:"principalId"`
	AccountID   string `json:"accountId"`
}
