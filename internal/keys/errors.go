// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import "errors"

var (
	// ErrInvalidSeed is returned when a mnemonic fails word-count, wordlist
	// or checksum validation.
	ErrInvalidSeed = errors.New("invalid seed phrase")
	// ErrDerivationFailed wraps unexpected BIP-32 or curve failures.
	ErrDerivationFailed = errors.New("key derivation failed")
	// ErrInvalidPrincipal is returned for malformed textual principals.
	ErrInvalidPrincipal = errors.New("invalid principal")
	// ErrInvalidKeyMaterial is returned when a key has the wrong shape.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
	// ErrInvalidSignature is returned when a compact signature does not
	// recover to the expected public key.
	ErrInvalidSignature = errors.New("invalid signature")
)
