// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// UserMessage translates an error returned by the services into the text
// shown to the user. Unknown errors are returned verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidPassword), errors.Is(err, crypto.ErrDecryptionFailed):
		return app.MsgIncorrectPassword
	case errors.Is(err, ErrPasswordRequired):
		return app.MsgPasswordRequired
	case errors.Is(err, keys.ErrInvalidSeed):
		return app.MsgInvalidSeed
	case errors.Is(err, ErrWalletNotFound):
		return app.MsgWalletNotFound
	case errors.Is(err, keys.ErrInvalidPrincipal):
		return app.MsgInvalidPrincipal
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, utils.ErrInvalidAmount),
		errors.Is(err, ErrAmountOverflow):
		return app.MsgInvalidAmount
	case errors.Is(err, ErrNegotiationAlreadyInProgress):
		return app.MsgNegotiationInProgress
	case IsOutcomeUncertain(err):
		return app.MsgOutcomeUncertain
	case models.IsLedgerError(err, models.LedgerErrInsufficientFunds):
		return app.MsgInsufficientFunds
	case errors.Is(err, ErrApproveClearFailed), errors.Is(err, ErrApproveSetFailed):
		var le *models.LedgerError
		if errors.As(err, &le) {
			return app.MsgApproveFailed + ": " + ledgerReason(le)
		}
		return app.MsgApproveFailed
	case errors.Is(err, ErrAllowanceInsufficientAfterApprove):
		return app.MsgApproveFailed
	case errors.Is(err, ErrFeeUnavailable):
		return app.MsgFeeUnavailable
	case errors.Is(err, ErrLedgerNotConfigured), errors.Is(err, ErrSpenderNotConfigured):
		return app.MsgNotConfigured
	case adapter.IsTransient(err):
		return app.MsgLedgerUnreachable
	}

	return err.Error()
}

var ledgerReasons = map[models.LedgerErrorKind]string{
	models.LedgerErrBadFee:                 app.MsgLedgerBadFee,
	models.LedgerErrAllowanceChanged:       app.MsgLedgerAllowanceChanged,
	models.LedgerErrInsufficientAllowance:  app.MsgLedgerInsufficientAllowance,
	models.LedgerErrTooOld:                 app.MsgLedgerTooOld,
	models.LedgerErrCreatedInFuture:        app.MsgLedgerCreatedInFuture,
	models.LedgerErrExpired:                app.MsgLedgerExpired,
	models.LedgerErrDuplicate:              app.MsgLedgerDuplicate,
	models.LedgerErrTemporarilyUnavailable: app.MsgLedgerTemporarilyUnavailable,
}

// ledgerReason renders the rejection kind of le for the user.
func ledgerReason(le *models.LedgerError) string {
	if reason, ok := ledgerReasons[le.Kind]; ok {
		return reason
	}
	if le.Kind == models.LedgerErrGenericError && le.Message != "" {
		return le.Message
	}
	return string(le.Kind)
}
