// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// newSimulator serves a fully protected gateway (bearer token, integrity
// hash and signatures) and returns adapters pointed at it.
func newSimulator(t *testing.T) (*testGateway, adapter.LedgerAdapter, adapter.Spender) {
	t.Helper()

	g := newTestGateway(t, func(c *config.ServerConfig) {
		c.HashKey = testHashKey
		c.Server.TokenKey = testTokenKey
		c.Server.TokenIssuer = testIssuer
	})
	srv := httptest.NewServer(g.router)
	t.Cleanup(srv.Close)

	adapterCfg := config.Adapter{
		Address:         srv.URL,
		PurchaseAddress: srv.URL,
		RequestTimeout:  5 * time.Second,
		TokenKey:        testTokenKey,
		TokenIssuer:     testIssuer,
		TokenDuration:   time.Minute,
	}

	ledgerAdapter, err := adapter.NewHTTPLedgerAdapter(adapterCfg, testHashKey, logger.Nop())
	require.NoError(t, err)
	spender, err := adapter.NewHTTPSpender(adapterCfg, testHashKey, logger.Nop())
	require.NoError(t, err)

	return g, ledgerAdapter, spender
}

func TestAdapterRoundTrip_Queries(t *testing.T) {
	g, ledgerAdapter, _ := newSimulator(t)
	ctx := context.Background()

	fee, err := ledgerAdapter.Fee(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(testFee), fee)

	md, err := ledgerAdapter.Metadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Peridot Token", md.Name)

	balance, err := ledgerAdapter.BalanceOf(ctx, g.ownerAcc())
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), balance)

	allowance, err := ledgerAdapter.Allowance(ctx, g.ownerAcc(), g.spenderAcc())
	require.NoError(t, err)
	assert.Zero(t, allowance.Allowance)
}

func TestAdapterRoundTrip_SignedCalls(t *testing.T) {
	g, ledgerAdapter, _ := newSimulator(t)
	ctx := context.Background()
	owner := ledgerAdapter.WithSigner(g.owner)

	createdAt := models.NatPtr(uint64(time.Now().UnixNano()))
	args := models.ApproveArgs{Spender: g.spenderAcc(), Amount: 300, CreatedAtTime: createdAt}

	index, err := owner.Approve(ctx, args)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), index)

	_, err = owner.Approve(ctx, args)
	require.Error(t, err)
	assert.True(t, models.IsLedgerError(err, models.LedgerErrDuplicate), "resubmission is deduplicated: %v", err)

	_, err = owner.Transfer(ctx, models.TransferArgs{To: g.spenderAcc(), Amount: 1_000})
	require.NoError(t, err)

	blocks, logLength, err := ledgerAdapter.Blocks(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), logLength)
	require.Len(t, blocks, 3)
	assert.Equal(t, "approve", blocks[1].Op)
	assert.Equal(t, g.spender.Principal(), blocks[1].Spender)
	assert.Equal(t, uint64(1_000), blocks[2].Amount)
}

func TestAdapterRoundTrip_UnsignedMutationRejected(t *testing.T) {
	g, ledgerAdapter, _ := newSimulator(t)

	_, err := ledgerAdapter.Transfer(context.Background(), models.TransferArgs{To: g.spenderAcc(), Amount: 1})

	assert.ErrorIs(t, err, adapter.ErrNoSigner)
}

func TestAdapterRoundTrip_Spend(t *testing.T) {
	g, ledgerAdapter, spender := newSimulator(t)
	ctx := context.Background()

	shopAcc := models.Account{Owner: shop}
	_, err := ledgerAdapter.WithSigner(g.owner).Approve(ctx, models.ApproveArgs{Spender: shopAcc, Amount: 100 + testFee})
	require.NoError(t, err)

	receipt, err := spender.Spend(ctx, models.SpendRequest{Buyer: g.ownerAcc(), ItemID: "item-1", Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, "item-1", receipt.ItemID)

	_, err = spender.Spend(ctx, models.SpendRequest{Buyer: g.ownerAcc(), ItemID: "item-1", Amount: 100})
	assert.ErrorIs(t, err, adapter.ErrConflict, "allowance is used up")
}

// TestNegotiatorAgainstSimulator runs the clear-then-set negotiation over
// real HTTP.
func TestNegotiatorAgainstSimulator(t *testing.T) {
	g, ledgerAdapter, _ := newSimulator(t)
	ctx := context.Background()
	owner := ledgerAdapter.WithSigner(g.owner)

	_, err := owner.Approve(ctx, models.ApproveArgs{Spender: g.spenderAcc(), Amount: 40})
	require.NoError(t, err)

	negotiator := service.NewAllowanceNegotiator(owner, time.Second, nil, nil, logger.Nop())

	result, err := negotiator.Negotiate(ctx, g.ownerAcc(), g.spenderAcc(), 75)
	require.NoError(t, err)
	assert.True(t, result.Cleared)
	assert.True(t, result.Set)
	assert.Equal(t, uint64(40), result.Initial)
	assert.Equal(t, uint64(75), result.Final)
	assert.Equal(t, models.Nat(75), g.ledger.Allowance(g.ownerAcc(), g.spenderAcc()).Allowance)

	again, err := negotiator.Negotiate(ctx, g.ownerAcc(), g.spenderAcc(), 75)
	require.NoError(t, err)
	assert.True(t, again.NoOp)

	// approve 40, clear, set: three fees
	assert.Equal(t, uint64(1_000_000-3*testFee), g.ledger.BalanceOf(g.ownerAcc()))
}
