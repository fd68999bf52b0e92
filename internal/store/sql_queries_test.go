// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildGetQuery(t *testing.T) {
	query, args, err := buildGetQuery(sqliteBuilder, WalletKey)
	require.NoError(t, err)
	assert.Equal(t, "SELECT item_value FROM kv_items WHERE item_key = ?", query)
	assert.Equal(t, []any{WalletKey}, args)

	query, _, err = buildGetQuery(postgresBuilder, WalletKey)
	require.NoError(t, err)
	assert.Equal(t, "SELECT item_value FROM kv_items WHERE item_key = $1", query)
}

func Test_buildUpsertQuery(t *testing.T) {
	query, args, err := buildUpsertQuery(postgresBuilder, LockKey, []byte("v"), 42)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO kv_items (item_key,item_value,updated_at) VALUES ($1,$2,$3) "+
			"ON CONFLICT (item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at",
		query)
	assert.Equal(t, []any{LockKey, []byte("v"), int64(42)}, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(sqliteBuilder, LockKey)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM kv_items WHERE item_key = ?", query)
	assert.Equal(t, []any{LockKey}, args)
}
