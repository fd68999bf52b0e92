// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/tyler-smith/go-bip39"
)

const (
	purpose  = 44
	coinType = 223 // ICP
)

// derivationPath is m/44'/223'/0'/0/0.
var derivationPath = []uint32{
	hdkeychain.HardenedKeyStart + purpose,
	hdkeychain.HardenedKeyStart + coinType,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

// DeriveKeyMaterial derives the secp256k1 keypair at m/44'/223'/0'/0/0 from a
// validated mnemonic. The BIP-39 passphrase is empty.
func DeriveKeyMaterial(phrase string) (models.KeyMaterial, error) {
	if !ValidateSeed(phrase) {
		return models.KeyMaterial{}, ErrInvalidSeed
	}

	seed := bip39.NewSeed(NormalizeSeed(phrase), "")
	defer clear(seed)

	// the network parameters only affect the serialised xprv version bytes
	node, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: master key: %w", ErrDerivationFailed, err)
	}

	for _, idx := range derivationPath {
		node, err = node.Derive(idx)
		if err != nil {
			return models.KeyMaterial{}, fmt.Errorf("%w: child %d: %w", ErrDerivationFailed, idx, err)
		}
	}

	priv, err := node.ECPrivKey()
	if err != nil {
		return models.KeyMaterial{}, fmt.Errorf("%w: private key: %w", ErrDerivationFailed, err)
	}

	return keyMaterialOf(priv), nil
}

// KeyMaterialFromPrivateKey rebuilds the keypair from a raw 32-byte scalar.
func KeyMaterialFromPrivateKey(raw []byte) (models.KeyMaterial, error) {
	if len(raw) != btcec.PrivKeyBytesLen {
		return models.KeyMaterial{}, fmt.Errorf("%w: private key must be %d bytes, got %d",
			ErrInvalidKeyMaterial, btcec.PrivKeyBytesLen, len(raw))
	}

	priv, _ := btcec.PrivKeyFromBytes(raw)
	if priv.Key.IsZero() {
		return models.KeyMaterial{}, fmt.Errorf("%w: zero private key", ErrInvalidKeyMaterial)
	}

	return keyMaterialOf(priv), nil
}

func keyMaterialOf(priv *btcec.PrivateKey) models.KeyMaterial {
	return models.KeyMaterial{
		PrivateKey: priv.Serialize(),
		PublicKey:  priv.PubKey().SerializeUncompressed(),
	}
}
