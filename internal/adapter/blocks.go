// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/hex"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// DecodeBlock turns a raw ICRC-3 block into a [models.Block].
//
// The decoder fails closed: a missing required field or any field of the
// wrong variant yields ErrMalformedBlock instead of a zero value. Required:
// a "tx" map holding "op" (Text) and "amt" (Nat), and a timestamp taken from
// block "ts", tx "ts" or tx "created_at_time" in that order.
func DecodeBlock(raw models.BlockWithID) (models.Block, error) {
	id := raw.ID.Uint64()
	root := raw.Block
	if root.Kind != models.ValueMap {
		return models.Block{}, malformed(id, "block is %s, want Map", root.Kind)
	}

	tx, ok := root.Lookup("tx")
	if !ok {
		return models.Block{}, malformed(id, "missing tx")
	}
	if tx.Kind != models.ValueMap {
		return models.Block{}, malformed(id, "tx is %s, want Map", tx.Kind)
	}

	block := models.Block{ID: id}

	var err error
	if block.Timestamp, err = timestampOf(root, tx); err != nil {
		return models.Block{}, malformed(id, "%v", err)
	}

	op, err := requiredText(tx, "op")
	if err != nil {
		return models.Block{}, malformed(id, "%v", err)
	}
	block.Op = op

	if block.Amount, err = requiredNat(tx, "amt"); err != nil {
		return models.Block{}, malformed(id, "%v", err)
	}

	fee, err := optionalNat(tx, "fee")
	if err != nil {
		return models.Block{}, malformed(id, "%v", err)
	}
	if fee == nil {
		if fee, err = optionalNat(root, "fee"); err != nil {
			return models.Block{}, malformed(id, "%v", err)
		}
	}
	block.Fee = fee

	for field, dst := range map[string]*string{"from": &block.From, "to": &block.To, "spender": &block.Spender} {
		if *dst, err = optionalAccount(tx, field); err != nil {
			return models.Block{}, malformed(id, "%v", err)
		}
	}

	if memo, ok := tx.Lookup("memo"); ok {
		if memo.Kind != models.ValueBlob {
			return models.Block{}, malformed(id, "memo is %s, want Blob", memo.Kind)
		}
		block.Memo = hex.EncodeToString(memo.Blob)
	}

	return block, nil
}

func malformed(id uint64, format string, args ...any) error {
	return fmt.Errorf("%w: block %d: %s", ErrMalformedBlock, id, fmt.Sprintf(format, args...))
}

func timestampOf(root, tx models.Value) (uint64, error) {
	for _, src := range []struct {
		v   models.Value
		key string
	}{{root, "ts"}, {tx, "ts"}, {tx, "created_at_time"}} {
		ts, err := optionalNat(src.v, src.key)
		if err != nil {
			return 0, err
		}
		if ts != nil {
			return *ts, nil
		}
	}
	return 0, fmt.Errorf("missing timestamp")
}

func requiredText(m models.Value, key string) (string, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	if v.Kind != models.ValueText {
		return "", fmt.Errorf("%s is %s, want Text", key, v.Kind)
	}
	return v.Text, nil
}

func requiredNat(m models.Value, key string) (uint64, error) {
	n, err := optionalNat(m, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, fmt.Errorf("missing %s", key)
	}
	return *n, nil
}

func optionalNat(m models.Value, key string) (*uint64, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return nil, nil
	}
	if v.Kind != models.ValueNat {
		return nil, fmt.Errorf("%s is %s, want Nat", key, v.Kind)
	}
	n := v.Nat
	return &n, nil
}

// optionalAccount decodes an account encoded as Array[Blob principal,
// Blob subaccount?] into the owner's text principal.
func optionalAccount(m models.Value, key string) (string, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return "", nil
	}
	if v.Kind != models.ValueArray || len(v.Array) == 0 || len(v.Array) > 2 {
		return "", fmt.Errorf("%s is not an account array", key)
	}
	for _, part := range v.Array {
		if part.Kind != models.ValueBlob {
			return "", fmt.Errorf("%s contains %s, want Blob", key, part.Kind)
		}
	}

	owner := v.Array[0].Blob
	if len(owner) > 29 {
		return "", fmt.Errorf("%s owner has invalid length %d", key, len(owner))
	}
	if len(v.Array) == 2 && len(v.Array[1].Blob) != 32 {
		return "", fmt.Errorf("%s subaccount must be 32 bytes", key)
	}

	return keys.EncodePrincipal(owner), nil
}
