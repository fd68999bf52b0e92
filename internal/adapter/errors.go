// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")

	// ErrTimeout means the request was sent but no answer arrived in time.
	// Whether the ledger applied it is unknown.
	ErrTimeout = errors.New("ledger request timed out")
	// ErrTransport covers connection-level failures.
	ErrTransport = errors.New("ledger transport error")

	ErrMalformedResponse = errors.New("malformed gateway response")
	ErrMalformedBlock    = errors.New("malformed ledger block")
	ErrNoSigner          = errors.New("request requires a signer")
	ErrEmptyAddress      = errors.New("gateway address is not configured")
)

// IsTransient reports whether err leaves the outcome of a submitted request
// unknown: a timeout, a broken connection or a gateway that could not reach
// the ledger.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrUnavailable)
}
