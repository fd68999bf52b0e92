// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// SignCompact signs SHA-256(msg) with the private key of km and returns the
// 65-byte recoverable signature.
func SignCompact(km models.KeyMaterial, msg []byte) ([]byte, error) {
	if len(km.PrivateKey) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: private key must be %d bytes", ErrInvalidKeyMaterial, btcec.PrivKeyBytesLen)
	}

	priv, _ := btcec.PrivKeyFromBytes(km.PrivateKey)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero private key", ErrInvalidKeyMaterial)
	}
	digest := sha256.Sum256(msg)

	return ecdsa.SignCompact(priv, digest[:], false), nil
}

// VerifyCompact checks that sig over SHA-256(msg) recovers to pub
// (uncompressed SEC1).
func VerifyCompact(pub, msg, sig []byte) error {
	digest := sha256.Sum256(msg)

	recovered, _, err := ecdsa.RecoverCompact(sig, digest[:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if !bytes.Equal(recovered.SerializeUncompressed(), pub) {
		return ErrInvalidSignature
	}

	return nil
}

// PrincipalOfPublicKey returns the textual principal of an uncompressed
// secp256k1 public key.
func PrincipalOfPublicKey(pub []byte) (string, error) {
	if len(pub) != PubKeyBytesLenUncompressed {
		return "", fmt.Errorf("%w: public key must be uncompressed", ErrInvalidKeyMaterial)
	}
	if _, err := btcec.ParsePubKey(pub); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	return EncodePrincipal(SelfAuthenticatingPrincipal(pub)), nil
}

// KeySigner authenticates gateway requests for one wallet. It keeps a private
// copy of the key material; call Wipe when done.
type KeySigner struct {
	km        models.KeyMaterial
	principal string
}

// NewKeySigner copies km and precomputes its principal.
func NewKeySigner(km models.KeyMaterial) (*KeySigner, error) {
	principal, err := PrincipalOfPublicKey(km.PublicKey)
	if err != nil {
		return nil, err
	}

	return &KeySigner{
		km: models.KeyMaterial{
			PrivateKey: bytes.Clone(km.PrivateKey),
			PublicKey:  bytes.Clone(km.PublicKey),
		},
		principal: principal,
	}, nil
}

// Principal returns the textual principal of the signing key.
func (s *KeySigner) Principal() string { return s.principal }
// PublicKey returns the uncompressed SEC1 public key.
func (s *KeySigner) PublicKey() []byte { return s.km.PublicKey }

// Sign returns the compact signature of SHA-256(msg).
func (s *KeySigner) Sign(msg []byte) ([]byte, error) {
	return SignCompact(s.km, msg)
}

// Wipe zeroes the signer's copy of the key material.
func (s *KeySigner) Wipe() {
	s.km.Wipe()
}
