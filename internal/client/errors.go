// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errAborted          = errors.New("aborted")
)
