// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrWalletNotFound   = errors.New("wallet not found")
)

// Allowance negotiation.
var (
	ErrAllowanceQueryFailed              = errors.New("allowance query failed")
	ErrApproveClearFailed                = errors.New("approve clear failed")
	ErrApproveSetFailed                  = errors.New("approve set failed")
	ErrApproveSetAmbiguous               = errors.New("approve set ambiguous: duplicate without sufficient allowance")
	ErrAllowanceInsufficientAfterApprove = errors.New("allowance insufficient after approve")
	ErrNegotiationAlreadyInProgress      = errors.New("negotiation already in progress")

	// ErrOutcomeUncertain marks failures after which a submitted approve may
	// still have landed on the ledger. Callers should re-query before acting.
	ErrOutcomeUncertain = errors.New("outcome uncertain")
)

// Payments and token operations.
var (
	ErrLedgerNotConfigured  = errors.New("ledger address is not configured")
	ErrSpenderNotConfigured = errors.New("spender is not configured")
	ErrFeeUnavailable       = errors.New("ledger fee unavailable")
	ErrAmountOverflow       = errors.New("amount plus fee overflows")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrSpendFailed          = errors.New("spend failed")
)

// IsOutcomeUncertain reports whether err carries [ErrOutcomeUncertain].
func IsOutcomeUncertain(err error) bool {
	return errors.Is(err, ErrOutcomeUncertain)
}

func markUncertain(err error) error {
	return errors.Join(err, ErrOutcomeUncertain)
}
