// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of ledger gateway requests before
// they reach the ledger.
//
// A Validator accepts any supported request value and, optionally, a list
// of field names that restricts which rules are applied. With no fields
// every rule of the type runs.
package validators

import "context"

// Validator defines a generic validation interface for request values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
