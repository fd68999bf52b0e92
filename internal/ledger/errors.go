// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"errors"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

var (
	ErrInvalidMintSpec = errors.New("invalid mint spec, want principal=amount")
	ErrNotConfigured   = errors.New("ledger spender is not configured")
)

func errDuplicate(of uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrDuplicate, DuplicateOf: models.Nat(of)}
}

func errBadFee(expected uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrBadFee, ExpectedFee: models.Nat(expected)}
}

func errAllowanceChanged(current uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrAllowanceChanged, CurrentAllowance: models.Nat(current)}
}

func errInsufficientFunds(balance uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrInsufficientFunds, Balance: models.Nat(balance)}
}

func errInsufficientAllowance(allowance uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrInsufficientAllowance, Allowance: models.Nat(allowance)}
}

func errTooOld() *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrTooOld}
}

func errCreatedInFuture(ledgerTime uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrCreatedInFuture, LedgerTime: models.Nat(ledgerTime)}
}

func errExpired(ledgerTime uint64) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrExpired, LedgerTime: models.Nat(ledgerTime)}
}

func errGeneric(code uint64, message string) *models.LedgerError {
	return &models.LedgerError{Kind: models.LedgerErrGenericError, ErrorCode: models.Nat(code), Message: message}
}
