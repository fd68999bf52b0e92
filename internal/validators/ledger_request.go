// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldAccount targets the queried account of balance and allowance
	// requests.
	FieldAccount = "account"

	// FieldSpender targets the spender account.
	FieldSpender = "spender"

	// FieldFrom targets the debited account of transfer_from.
	FieldFrom = "from"

	// FieldTo targets the credited account.
	FieldTo = "to"

	// FieldFromSubaccount targets the caller's own subaccount.
	FieldFromSubaccount = "from_subaccount"

	// FieldMemo targets the memo blob.
	FieldMemo = "memo"

	// FieldBuyer targets the buyer of a purchase.
	FieldBuyer = "buyer"

	// FieldItemID targets the purchased item.
	FieldItemID = "item_id"

	// FieldAmount targets an amount that must be non-zero.
	FieldAmount = "amount"
)

const (
	subaccountSize = 32
	maxMemoSize    = 32
)

// LedgerRequestValidator implements Validator for the gateway request
// models: Account, AllowanceArgs, ApproveArgs, TransferArgs,
// TransferFromArgs and SpendRequest, by value or by pointer.
type LedgerRequestValidator struct{}

// NewLedgerRequestValidator returns the validator as the Validator interface.
func NewLedgerRequestValidator() Validator {
	return &LedgerRequestValidator{}
}

func (v *LedgerRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Account:
		return validateAccount(FieldAccount, value)
	case *models.Account:
		return validateAccount(FieldAccount, *value)

	case models.AllowanceArgs:
		return v.validateAllowanceArgs(value, fields...)
	case *models.AllowanceArgs:
		return v.validateAllowanceArgs(*value, fields...)

	case models.ApproveArgs:
		return v.validateApproveArgs(value, fields...)
	case *models.ApproveArgs:
		return v.validateApproveArgs(*value, fields...)

	case models.TransferArgs:
		return v.validateTransferArgs(value, fields...)
	case *models.TransferArgs:
		return v.validateTransferArgs(*value, fields...)

	case models.TransferFromArgs:
		return v.validateTransferFromArgs(value, fields...)
	case *models.TransferFromArgs:
		return v.validateTransferFromArgs(*value, fields...)

	case models.SpendRequest:
		return v.validateSpendRequest(value, fields...)
	case *models.SpendRequest:
		return v.validateSpendRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *LedgerRequestValidator) validateAllowanceArgs(args models.AllowanceArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccount, FieldSpender}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldAccount:
			err = validateAccount(f, args.Account)
		case FieldSpender:
			err = validateAccount(f, args.Spender)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *LedgerRequestValidator) validateApproveArgs(args models.ApproveArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFromSubaccount, FieldSpender, FieldMemo}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFromSubaccount:
			err = validateSubaccount(f, args.FromSubaccount)
		case FieldSpender:
			err = validateAccount(f, args.Spender)
		case FieldMemo:
			err = validateMemo(args.Memo)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *LedgerRequestValidator) validateTransferArgs(args models.TransferArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFromSubaccount, FieldTo, FieldMemo}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFromSubaccount:
			err = validateSubaccount(f, args.FromSubaccount)
		case FieldTo:
			err = validateAccount(f, args.To)
		case FieldMemo:
			err = validateMemo(args.Memo)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *LedgerRequestValidator) validateTransferFromArgs(args models.TransferFromArgs, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrom, FieldTo, FieldMemo}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFrom:
			err = validateAccount(f, args.From)
		case FieldTo:
			err = validateAccount(f, args.To)
		case FieldMemo:
			err = validateMemo(args.Memo)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *LedgerRequestValidator) validateSpendRequest(req models.SpendRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBuyer, FieldItemID, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldBuyer:
			if err := validateAccount(f, req.Buyer); err != nil {
				return err
			}
		case FieldItemID:
			if req.ItemID == "" {
				return ErrEmptyItemID
			}
		case FieldAmount:
			if req.Amount == 0 {
				return ErrZeroAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateAccount(field string, a models.Account) error {
	if _, err := keys.DecodePrincipal(a.Owner); err != nil {
		return fmt.Errorf("%s: %w: %w", field, ErrInvalidOwner, err)
	}
	return validateSubaccount(field, a.Subaccount)
}

func validateSubaccount(field string, sub []byte) error {
	if len(sub) != 0 && len(sub) != subaccountSize {
		return fmt.Errorf("%s: %w", field, ErrInvalidSubaccount)
	}
	return nil
}

func validateMemo(memo []byte) error {
	if len(memo) > maxMemoSize {
		return ErrMemoTooLong
	}
	return nil
}
