// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

func entry(key string, v models.Value) models.ValueEntry {
	return models.ValueEntry{Key: key, Value: v}
}

func anonymousAccount() models.Value {
	return models.ArrayValue(models.BlobValue([]byte{0x04}))
}

func TestDecodeBlock_Transfer(t *testing.T) {
	raw := models.BlockWithID{
		ID: 12,
		Block: models.MapValue(
			entry("ts", models.NatValue(1_700_000_000_000_000_000)),
			entry("fee", models.NatValue(10_000)),
			entry("tx", models.MapValue(
				entry("op", models.TextValue("xfer")),
				entry("amt", models.NatValue(250)),
				entry("from", anonymousAccount()),
				entry("to", models.ArrayValue(models.BlobValue([]byte{0x04}), models.BlobValue(make([]byte, 32)))),
				entry("memo", models.BlobValue([]byte{0xca, 0xfe})),
			)),
		),
	}

	got, err := DecodeBlock(raw)
	require.NoError(t, err)

	require.NotNil(t, got.Fee)
	assert.Equal(t, uint64(10_000), *got.Fee)
	assert.Equal(t, uint64(12), got.ID)
	assert.Equal(t, uint64(1_700_000_000_000_000_000), got.Timestamp)
	assert.Equal(t, "xfer", got.Op)
	assert.Equal(t, uint64(250), got.Amount)
	assert.Equal(t, keys.AnonymousPrincipal, got.From)
	assert.Equal(t, keys.AnonymousPrincipal, got.To)
	assert.Empty(t, got.Spender)
	assert.Equal(t, "cafe", got.Memo)
}

func TestDecodeBlock_TimestampFallbacks(t *testing.T) {
	tx := func(extra ...models.ValueEntry) models.Value {
		entries := append([]models.ValueEntry{
			entry("op", models.TextValue("approve")),
			entry("amt", models.NatValue(1)),
		}, extra...)
		return models.MapValue(entries...)
	}

	got, err := DecodeBlock(models.BlockWithID{Block: models.MapValue(entry("tx", tx(entry("ts", models.NatValue(7)))))})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.Timestamp)

	got, err = DecodeBlock(models.BlockWithID{Block: models.MapValue(entry("tx", tx(entry("created_at_time", models.NatValue(9)))))})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.Timestamp)
	assert.Nil(t, got.Fee)
}

func TestDecodeBlock_FailsClosed(t *testing.T) {
	validTx := func(overrides ...models.ValueEntry) models.Value {
		fields := map[string]models.Value{
			"op":  models.TextValue("xfer"),
			"amt": models.NatValue(1),
		}
		for _, o := range overrides {
			fields[o.Key] = o.Value
		}
		entries := make([]models.ValueEntry, 0, len(fields))
		for _, k := range []string{"op", "amt", "fee", "from", "to", "spender", "memo"} {
			if v, ok := fields[k]; ok {
				entries = append(entries, entry(k, v))
			}
		}
		return models.MapValue(entries...)
	}
	withTS := func(tx models.Value) models.Value {
		return models.MapValue(entry("ts", models.NatValue(1)), entry("tx", tx))
	}

	tests := []struct {
		name  string
		block models.Value
	}{
		{name: "not a map", block: models.TextValue("x")},
		{name: "missing tx", block: models.MapValue(entry("ts", models.NatValue(1)))},
		{name: "tx not a map", block: models.MapValue(entry("ts", models.NatValue(1)), entry("tx", models.NatValue(1)))},
		{name: "missing timestamp", block: models.MapValue(entry("tx", validTx()))},
		{name: "timestamp wrong kind", block: models.MapValue(entry("ts", models.TextValue("1")), entry("tx", validTx()))},
		{name: "missing op", block: withTS(models.MapValue(entry("amt", models.NatValue(1))))},
		{name: "op wrong kind", block: withTS(validTx(entry("op", models.NatValue(1))))},
		{name: "missing amount", block: withTS(models.MapValue(entry("op", models.TextValue("xfer"))))},
		{name: "amount as int", block: withTS(validTx(entry("amt", models.IntValue(1))))},
		{name: "fee wrong kind", block: withTS(validTx(entry("fee", models.TextValue("1"))))},
		{name: "from not array", block: withTS(validTx(entry("from", models.BlobValue([]byte{4}))))},
		{name: "from empty", block: withTS(validTx(entry("from", models.ArrayValue())))},
		{name: "to text owner", block: withTS(validTx(entry("to", models.ArrayValue(models.TextValue("aaaaa-aa")))))},
		{name: "short subaccount", block: withTS(validTx(entry("spender", models.ArrayValue(models.BlobValue([]byte{4}), models.BlobValue([]byte{1})))))},
		{name: "memo as text", block: withTS(validTx(entry("memo", models.TextValue("hi"))))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBlock(models.BlockWithID{ID: 1, Block: tt.block})
			assert.ErrorIs(t, err, ErrMalformedBlock)
		})
	}
}
