// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is the only error returned by decryption. It never
	// says which check failed.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrMissingLockSecret is returned when the session key wrapper is built
	// without a process secret.
	ErrMissingLockSecret = errors.New("app lock secret is not configured")
)
