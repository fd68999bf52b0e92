// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keys

import "github.com/peridotvault/peridot-desktop-sub002/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keys_mock.go -package=mock

// Deriver bundles the derivation functions so that services can be tested
// without running PBKDF2-heavy BIP-39 seed generation.
type Deriver interface {
	ValidateSeed(phrase string) bool
	DeriveKeyMaterial(phrase string) (models.KeyMaterial, error)
	KeyMaterialFromPrivateKey(priv []byte) (models.KeyMaterial, error)
	DeriveIdentity(km models.KeyMaterial) (models.PublicIdentity, error)
	GenerateMnemonic() (string, error)
}

// Default is the production [Deriver].
type Default struct{}

// NewDeriver returns the production [Deriver].
func NewDeriver() Deriver {
	return Default{}
}

func (Default) ValidateSeed(phrase string) bool { return ValidateSeed(phrase) }

func (Default) DeriveKeyMaterial(phrase string) (models.KeyMaterial, error) {
	return DeriveKeyMaterial(phrase)
}

func (Default) KeyMaterialFromPrivateKey(priv []byte) (models.KeyMaterial, error) {
	return KeyMaterialFromPrivateKey(priv)
}

func (Default) DeriveIdentity(km models.KeyMaterial) (models.PublicIdentity, error) {
	return DeriveIdentity(km)
}

func (Default) GenerateMnemonic() (string, error) { return GenerateMnemonic() }
