// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by stores and repositories. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KVStore.Get] when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedRecord is returned when a persisted record cannot be
	// decoded or violates the all-or-nothing wallet invariant.
	ErrCorruptedRecord = errors.New("corrupted record")

	// ErrUnknownBackend is returned for an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrUnknownCodec is returned for an unsupported codec name.
	ErrUnknownCodec = errors.New("unknown codec")

	// ErrStoreClosed is returned by in-process stores after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors. These are wrapped by the SQL store
// when an operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
