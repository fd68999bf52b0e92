// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the gateway middleware and handlers. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingSignature is returned when a mutating call carries no
	// sender public key or signature.
	ErrMissingSignature = errors.New("missing request signature")

	// ErrInvalidSignature is returned when the signature does not verify
	// against the body and the sender public key.
	ErrInvalidSignature = errors.New("invalid request signature")

	// ErrPrincipalMismatch is returned when the signing key does not belong
	// to the principal named in the bearer token.
	ErrPrincipalMismatch = errors.New("signer does not match token principal")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrInvalidRequest is returned for undecodable bodies and invalid
	// accounts.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSpenderNotConfigured is returned by the purchase endpoint when the
	// simulator has no spender identity.
	ErrSpenderNotConfigured = errors.New("simulator spender is not configured")
)
