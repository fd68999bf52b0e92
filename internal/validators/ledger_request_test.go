// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const (
	shop     = "rrkah-fqaaa-aaaaa-aaaaq-cai"
	treasury = "ryjl3-tyaaa-aaaaa-aaaba-cai"
)

var (
	shopAcc     = models.Account{Owner: shop}
	treasuryAcc = models.Account{Owner: treasury}
	sub32       = bytes.Repeat([]byte{1}, 32)
)

func TestLedgerRequestValidator_Validate(t *testing.T) {
	v := NewLedgerRequestValidator()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "account ok", obj: models.Account{Owner: shop, Subaccount: sub32}},
		{name: "account pointer", obj: &treasuryAcc},
		{name: "account bad owner", obj: models.Account{Owner: "not-a-principal"}, wantErr: ErrInvalidOwner},
		{name: "account bad owner wraps principal error", obj: models.Account{Owner: "not-a-principal"}, wantErr: keys.ErrInvalidPrincipal},
		{name: "account short subaccount", obj: models.Account{Owner: shop, Subaccount: []byte{1}}, wantErr: ErrInvalidSubaccount},

		{name: "allowance ok", obj: models.AllowanceArgs{Account: shopAcc, Spender: treasuryAcc}},
		{name: "allowance bad spender", obj: &models.AllowanceArgs{Account: shopAcc}, wantErr: ErrInvalidOwner},
		{name: "allowance scoped to account", obj: models.AllowanceArgs{Account: shopAcc}, fields: []string{FieldAccount}},

		{name: "approve ok", obj: models.ApproveArgs{Spender: shopAcc, Amount: 5, Memo: []byte("order-1")}},
		{name: "approve memo too long", obj: models.ApproveArgs{Spender: shopAcc, Memo: bytes.Repeat([]byte{'m'}, 33)}, wantErr: ErrMemoTooLong},
		{name: "approve bad from subaccount", obj: &models.ApproveArgs{Spender: shopAcc, FromSubaccount: []byte{1, 2}}, wantErr: ErrInvalidSubaccount},

		{name: "transfer ok", obj: models.TransferArgs{To: treasuryAcc, Amount: 0}},
		{name: "transfer bad to", obj: models.TransferArgs{To: models.Account{}}, wantErr: ErrInvalidOwner},
		{name: "transfer unknown field", obj: models.TransferArgs{To: treasuryAcc}, fields: []string{FieldItemID}, wantErr: ErrUnknownField},

		{name: "transfer_from ok", obj: models.TransferFromArgs{From: shopAcc, To: treasuryAcc, Amount: 1}},
		{name: "transfer_from bad from", obj: &models.TransferFromArgs{To: treasuryAcc}, wantErr: ErrInvalidOwner},

		{name: "spend ok", obj: models.SpendRequest{Buyer: shopAcc, ItemID: "game-1", Amount: 1}},
		{name: "spend no item", obj: models.SpendRequest{Buyer: shopAcc, Amount: 1}, wantErr: ErrEmptyItemID},
		{name: "spend zero amount", obj: &models.SpendRequest{Buyer: shopAcc, ItemID: "game-1"}, wantErr: ErrZeroAmount},
		{name: "spend amount only", obj: models.SpendRequest{Amount: 1}, fields: []string{FieldAmount}},

		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
