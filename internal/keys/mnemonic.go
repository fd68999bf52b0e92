// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

const (
	// ExpectedWordCount is the only accepted mnemonic length.
	ExpectedWordCount = 12
	// mnemonicEntropyBits yields ExpectedWordCount words.
	mnemonicEntropyBits = 128
)

// NormalizeSeed trims the phrase and collapses inner whitespace to single
// spaces. Case is preserved: the BIP-39 wordlist is lowercase only.
func NormalizeSeed(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

// ValidateSeed reports whether phrase is a 12-word BIP-39 English mnemonic
// with a valid checksum.
func ValidateSeed(phrase string) bool {
	normalized := NormalizeSeed(phrase)
	if len(strings.Fields(normalized)) != ExpectedWordCount {
		return false
	}

	return bip39.IsMnemonicValid(normalized)
}

// GenerateMnemonic creates a fresh 12-word mnemonic from 128 bits of
// crypto/rand entropy.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}

	return mnemonic, nil
}
