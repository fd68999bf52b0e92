// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Block operation names as they appear in tx.op.
const (
	OpMint     = "mint"
	OpTransfer = "xfer"
	OpApprove  = "approve"
)

// txFields accumulates the "tx" map of a block in a stable order.
type txFields struct {
	entries []models.ValueEntry
}

func (t *txFields) nat(key string, n uint64) *txFields {
	t.entries = append(t.entries, models.ValueEntry{Key: key, Value: models.NatValue(n)})
	return t
}

func (t *txFields) optNat(key string, n *models.Nat) *txFields {
	if n != nil {
		t.nat(key, n.Uint64())
	}
	return t
}

func (t *txFields) text(key, s string) *txFields {
	t.entries = append(t.entries, models.ValueEntry{Key: key, Value: models.TextValue(s)})
	return t
}

func (t *txFields) blob(key string, b []byte) *txFields {
	if len(b) > 0 {
		t.entries = append(t.entries, models.ValueEntry{Key: key, Value: models.BlobValue(b)})
	}
	return t
}

// account must only be called with owners validated by ParseAccount.
func (t *txFields) account(key string, a models.Account) *txFields {
	owner, _ := keys.DecodePrincipal(a.Owner)
	items := []models.Value{models.BlobValue(owner)}
	if len(a.Subaccount) > 0 {
		items = append(items, models.BlobValue(a.Subaccount))
	}
	t.entries = append(t.entries, models.ValueEntry{Key: key, Value: models.ArrayValue(items...)})
	return t
}

// encodeBlock builds the ICRC-3 value of one block. fee is the fee actually
// charged, or nil when none was.
func encodeBlock(ts uint64, fee *uint64, phash []byte, tx *txFields) models.Value {
	entries := []models.ValueEntry{{Key: "ts", Value: models.NatValue(ts)}}
	if fee != nil {
		entries = append(entries, models.ValueEntry{Key: "fee", Value: models.NatValue(*fee)})
	}
	if len(phash) > 0 {
		entries = append(entries, models.ValueEntry{Key: "phash", Value: models.BlobValue(phash)})
	}
	entries = append(entries, models.ValueEntry{Key: "tx", Value: models.MapValue(tx.entries...)})
	return models.MapValue(entries...)
}
