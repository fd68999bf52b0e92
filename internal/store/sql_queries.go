// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_items"
	kvKeyColumn   = "item_key"
	kvValueColumn = "item_value"
	kvTimeColumn  = "updated_at"

	upsertSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvTimeColumn + " = excluded." + kvTimeColumn
)

// buildGetQuery selects the value stored under key.
func buildGetQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildUpsertQuery inserts or replaces the value under key. Both sqlite
// (3.24+) and PostgreSQL accept the ON CONFLICT clause.
func buildUpsertQuery(b sq.StatementBuilderType, key string, value []byte, updatedAtMs int64) (string, []any, error) {
	return b.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvTimeColumn).
		Values(key, value, updatedAtMs).
		Suffix(upsertSuffix).
		ToSql()
}

// buildDeleteQuery removes key.
func buildDeleteQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
