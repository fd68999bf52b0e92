// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a gateway bearer token.
//
// The "sub" claim carries the text principal of the caller. Principal caches
// it once the token has been verified.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	Principal string `json:"-"`
}

// GetPrincipal returns the subject claim.
func (t *Token) GetPrincipal() (string, error) {
	principal, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting principal from token: %w", err)
	}
	if principal == "" {
		return "", fmt.Errorf("error extracting principal from token: empty subject")
	}

	return principal, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
