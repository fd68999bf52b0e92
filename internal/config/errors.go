// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, missing gateway address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, unknown backend or codec, or a missing DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing lock secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLedgerConfigs indicates invalid negotiation settings.
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero lock watch interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates invalid simulator server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
