// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the wallet core and the ledger
// simulator: context keys, HMAC hashing, JWT handling, HTTP helpers, id
// generation and token amount conversion.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey stores the authenticated caller principal (text form).
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext returns the caller principal stored by the auth
// middleware. ok is false when it is missing or empty.
func GetPrincipalFromContext(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(string)
	return principal, ok && principal != ""
}
