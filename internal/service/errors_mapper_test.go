// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/crypto"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "invalid password", err: ErrInvalidPassword, want: app.MsgIncorrectPassword},
		{name: "decryption failed", err: fmt.Errorf("open seed: %w", crypto.ErrDecryptionFailed), want: app.MsgIncorrectPassword},
		{name: "password required", err: ErrPasswordRequired, want: app.MsgPasswordRequired},
		{name: "invalid seed", err: keys.ErrInvalidSeed, want: app.MsgInvalidSeed},
		{name: "no wallet", err: ErrWalletNotFound, want: app.MsgWalletNotFound},
		{name: "invalid principal", err: keys.ErrInvalidPrincipal, want: app.MsgInvalidPrincipal},
		{name: "overflow", err: ErrAmountOverflow, want: app.MsgInvalidAmount},
		{name: "in progress", err: ErrNegotiationAlreadyInProgress, want: app.MsgNegotiationInProgress},
		{name: "ambiguous", err: markUncertain(ErrApproveSetAmbiguous), want: app.MsgOutcomeUncertain},
		{
			name: "insufficient funds",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrInsufficientFunds}),
			want: app.MsgInsufficientFunds,
		},
		{name: "approve rejected", err: ErrApproveClearFailed, want: app.MsgApproveFailed},
		{
			name: "bad fee on set",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrBadFee, ExpectedFee: 20}),
			want: app.MsgApproveFailed + ": " + app.MsgLedgerBadFee,
		},
		{
			name: "allowance changed on clear",
			err:  fmt.Errorf("%w: %w", ErrApproveClearFailed, &models.LedgerError{Kind: models.LedgerErrAllowanceChanged}),
			want: app.MsgApproveFailed + ": " + app.MsgLedgerAllowanceChanged,
		},
		{
			name: "too old",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrTooOld}),
			want: app.MsgApproveFailed + ": " + app.MsgLedgerTooOld,
		},
		{
			name: "temporarily unavailable",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrTemporarilyUnavailable}),
			want: app.MsgApproveFailed + ": " + app.MsgLedgerTemporarilyUnavailable,
		},
		{
			name: "generic error carries the ledger message",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrGenericError, Message: "canister stopped"}),
			want: app.MsgApproveFailed + ": canister stopped",
		},
		{
			name: "bad burn falls back to the kind",
			err:  fmt.Errorf("%w: %w", ErrApproveSetFailed, &models.LedgerError{Kind: models.LedgerErrBadBurn}),
			want: app.MsgApproveFailed + ": BadBurn",
		},
		{name: "fee", err: ErrFeeUnavailable, want: app.MsgFeeUnavailable},
		{name: "not configured", err: ErrSpenderNotConfigured, want: app.MsgNotConfigured},
		{name: "transport", err: adapter.ErrTransport, want: app.MsgLedgerUnreachable},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
