// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LedgerErrorKind names an ICRC-1/ICRC-2 error variant.
type LedgerErrorKind string

const (
	LedgerErrDuplicate              LedgerErrorKind = "Duplicate"
	LedgerErrBadFee                 LedgerErrorKind = "BadFee"
	LedgerErrAllowanceChanged       LedgerErrorKind = "AllowanceChanged"
	LedgerErrInsufficientFunds      LedgerErrorKind = "InsufficientFunds"
	LedgerErrInsufficientAllowance  LedgerErrorKind = "InsufficientAllowance"
	LedgerErrBadBurn                LedgerErrorKind = "BadBurn"
	LedgerErrCreatedInFuture        LedgerErrorKind = "CreatedInFuture"
	LedgerErrTooOld                 LedgerErrorKind = "TooOld"
	LedgerErrExpired                LedgerErrorKind = "Expired"
	LedgerErrGenericError           LedgerErrorKind = "GenericError"
	LedgerErrTemporarilyUnavailable LedgerErrorKind = "TemporarilyUnavailable"
)

var knownLedgerErrorKinds = map[LedgerErrorKind]struct{}{
	LedgerErrDuplicate:              {},
	LedgerErrBadFee:                 {},
	LedgerErrAllowanceChanged:       {},
	LedgerErrInsufficientFunds:      {},
	LedgerErrInsufficientAllowance:  {},
	LedgerErrBadBurn:                {},
	LedgerErrCreatedInFuture:        {},
	LedgerErrTooOld:                 {},
	LedgerErrExpired:                {},
	LedgerErrGenericError:           {},
	LedgerErrTemporarilyUnavailable: {},
}

// LedgerError is a typed error variant returned by the ledger. Only the
// payload fields belonging to Kind are meaningful.
type LedgerError struct {
	Kind LedgerErrorKind

	DuplicateOf      Nat
	ExpectedFee      Nat
	CurrentAllowance Nat
	Balance          Nat
	Allowance        Nat
	MinBurnAmount    Nat
	LedgerTime       Nat
	ErrorCode        Nat
	Message          string
}

// Error implements error.
func (e *LedgerError) Error() string {
	switch e.Kind {
	case LedgerErrDuplicate:
		return fmt.Sprintf("ledger: Duplicate (of block %d)", e.DuplicateOf)
	case LedgerErrBadFee:
		return fmt.Sprintf("ledger: BadFee (expected %d)", e.ExpectedFee)
	case LedgerErrAllowanceChanged:
		return fmt.Sprintf("ledger: AllowanceChanged (current %d)", e.CurrentAllowance)
	case LedgerErrInsufficientFunds:
		return fmt.Sprintf("ledger: InsufficientFunds (balance %d)", e.Balance)
	case LedgerErrInsufficientAllowance:
		return fmt.Sprintf("ledger: InsufficientAllowance (allowance %d)", e.Allowance)
	case LedgerErrGenericError:
		return fmt.Sprintf("ledger: GenericError %d: %s", e.ErrorCode, e.Message)
	default:
		return "ledger: " + string(e.Kind)
	}
}

// IsLedgerError reports whether err carries a [LedgerError] of the given kind.
func IsLedgerError(err error, kind LedgerErrorKind) bool {
	var le *LedgerError
	return errors.As(err, &le) && le.Kind == kind
}

type ledgerErrorPayload struct {
	DuplicateOf      *Nat    `json:"duplicate_of,omitempty"`
	ExpectedFee      *Nat    `json:"expected_fee,omitempty"`
	CurrentAllowance *Nat    `json:"current_allowance,omitempty"`
	Balance          *Nat    `json:"balance,omitempty"`
	Allowance        *Nat    `json:"allowance,omitempty"`
	MinBurnAmount    *Nat    `json:"min_burn_amount,omitempty"`
	LedgerTime       *Nat    `json:"ledger_time,omitempty"`
	ErrorCode        *Nat    `json:"error_code,omitempty"`
	Message          *string `json:"message,omitempty"`
}

// MarshalJSON encodes the error as a single-key variant object, for example
// {"Duplicate": {"duplicate_of": "7"}}.
func (e LedgerError) MarshalJSON() ([]byte, error) {
	var p ledgerErrorPayload
	switch e.Kind {
	case LedgerErrDuplicate:
		p.DuplicateOf = &e.DuplicateOf
	case LedgerErrBadFee:
		p.ExpectedFee = &e.ExpectedFee
	case LedgerErrAllowanceChanged:
		p.CurrentAllowance = &e.CurrentAllowance
	case LedgerErrInsufficientFunds:
		p.Balance = &e.Balance
	case LedgerErrInsufficientAllowance:
		p.Allowance = &e.Allowance
	case LedgerErrBadBurn:
		p.MinBurnAmount = &e.MinBurnAmount
	case LedgerErrCreatedInFuture, LedgerErrExpired:
		p.LedgerTime = &e.LedgerTime
	case LedgerErrGenericError:
		p.ErrorCode = &e.ErrorCode
		p.Message = &e.Message
	}

	return json.Marshal(map[LedgerErrorKind]ledgerErrorPayload{e.Kind: p})
}

// UnmarshalJSON decodes a single-key variant object. Unknown variants and
// objects with more than one key are rejected.
func (e *LedgerError) UnmarshalJSON(b []byte) error {
	var raw map[LedgerErrorKind]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("ledger error must have exactly one variant, got %d", len(raw))
	}

	for kind, payload := range raw {
		if _, ok := knownLedgerErrorKinds[kind]; !ok {
			return fmt.Errorf("unknown ledger error variant %q", kind)
		}

		var p ledgerErrorPayload
		if len(payload) > 0 && string(payload) != "null" {
			if err := json.Unmarshal(payload, &p); err != nil {
				return fmt.Errorf("decode %s payload: %w", kind, err)
			}
		}

		*e = LedgerError{Kind: kind}
		e.DuplicateOf = natOrZero(p.DuplicateOf)
		e.ExpectedFee = natOrZero(p.ExpectedFee)
		e.CurrentAllowance = natOrZero(p.CurrentAllowance)
		e.Balance = natOrZero(p.Balance)
		e.Allowance = natOrZero(p.Allowance)
		e.MinBurnAmount = natOrZero(p.MinBurnAmount)
		e.LedgerTime = natOrZero(p.LedgerTime)
		e.ErrorCode = natOrZero(p.ErrorCode)
		if p.Message != nil {
			e.Message = *p.Message
		}
	}

	return nil
}

func natOrZero(n *Nat) Nat {
	if n == nil {
		return 0
	}
	return *n
}
