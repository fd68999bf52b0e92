// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keys derives a wallet identity from a BIP-39 mnemonic.
//
// A 12-word mnemonic is turned into a BIP-39 seed (empty passphrase), a
// BIP-32 master key and finally the secp256k1 key at m/44'/223'/0'/0/0.
// From the public key the package computes the self-authenticating ICP
// principal and the default-subaccount ICP account id.
//
// Every function here is pure: no I/O, no global state.
package keys
