// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testPrincipal = "tgzar-4lpln-fq34h-6hxo4-wlm3x-6g3or-6hxvr-d6jbw-ooh2b-lzsw4-aqe"

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("peridot-vault", testPrincipal, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		t.Fatal("could not cast claims to RegisteredClaims")
	}
	if claims.Issuer != "peridot-vault" {
		t.Errorf("unexpected issuer %s", claims.Issuer)
	}
	if claims.Subject != testPrincipal {
		t.Errorf("unexpected subject %s", claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		principal string
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", testPrincipal, time.Hour, "key"},
		{"empty principal", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", testPrincipal, 0, "key"},
		{"empty key", "iss", testPrincipal, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.principal, tt.duration, tt.key); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("peridot-vault", testPrincipal, time.Hour, "secret-key")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "peridot-vault")
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if parsed.Principal != testPrincipal {
		t.Errorf("unexpected principal %q", parsed.Principal)
	}

	if _, err := ValidateAndParseJWTToken(token.SignedString, "other-key", "peridot-vault"); err == nil {
		t.Error("expected signature error")
	}
	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "other-issuer"); err == nil {
		t.Error("expected issuer error")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "peridot-vault",
		Subject:   testPrincipal,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "k", "peridot-vault"); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))

	if _, err := ValidateAndParseJWTToken(signed, "k", "iss"); err == nil {
		t.Fatal("expected missing subject to be rejected")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "  bearer   abc ", want: "abc"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if (err != nil) != tt.wantErr {
			t.Fatalf("%q: unexpected error state %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
