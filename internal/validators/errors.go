// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwner      = errors.New("invalid account owner")
	ErrInvalidSubaccount = errors.New("subaccount must be 32 bytes")
	ErrMemoTooLong       = errors.New("memo exceeds 32 bytes")
	ErrEmptyItemID       = errors.New("item id is required")
	ErrZeroAmount        = errors.New("amount must be positive")
)
