// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/mock"
	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// bindTo is a ledgerBinder that always hands out the same negotiator and
// remembers the ledger it was bound to.
type bindTo struct {
	negotiator AllowanceNegotiator
	bound      adapter.LedgerAdapter
}

func (b *bindTo) WithLedger(ledger adapter.LedgerAdapter) AllowanceNegotiator {
	b.bound = ledger
	return b.negotiator
}

type paymentMocks struct {
	vault      *mock.MockWalletVault
	ledger     *mock.MockLedgerAdapter
	signed     *mock.MockLedgerAdapter
	spender    *mock.MockSpender
	negotiator *mock.MockAllowanceNegotiator
	binder     *bindTo
}

// newTestPaymentSvc mocks every collaborator of a paymentService.
func newTestPaymentSvc(t *testing.T, ctrl *gomock.Controller, cfg config.Ledger) (*paymentService, paymentMocks) {
	t.Helper()
	m := paymentMocks{
		vault:      mock.NewMockWalletVault(ctrl),
		ledger:     mock.NewMockLedgerAdapter(ctrl),
		signed:     mock.NewMockLedgerAdapter(ctrl),
		spender:    mock.NewMockSpender(ctrl),
		negotiator: mock.NewMockAllowanceNegotiator(ctrl),
	}
	m.binder = &bindTo{negotiator: m.negotiator}

	svc := NewPaymentService(m.vault, m.ledger, m.spender, m.binder, cfg, logger.Nop()).(*paymentService)
	return svc, m
}

func testRecord(t *testing.T) models.WalletRecord {
	t.Helper()
	principal := testOwner.Owner
	account := testAccountID
	blob := &models.EncryptedBlob{Ciphertext: []byte{1}}
	return models.WalletRecord{
		EncryptedSeedPhrase: blob,
		PrincipalID:         &principal,
		AccountID:           &account,
		EncryptedPrivateKey: blob,
		VerificationToken:   blob,
	}
}

func testKeyMaterial(t *testing.T) models.KeyMaterial {
	t.Helper()
	km, err := keys.DeriveKeyMaterial(testSeed)
	require.NoError(t, err)
	return km
}

// expectWalletKey sets up Load and KeyMaterial for the stored test wallet.
func expectWalletKey(t *testing.T, m paymentMocks, password string) {
	record := testRecord(t)
	m.vault.EXPECT().Load(gomock.Any()).Return(record, nil)
	m.vault.EXPECT().KeyMaterial(gomock.Any(), record, password).Return(testKeyMaterial(t), nil)
}

func expectQuote(m paymentMocks, decimals uint8, fee uint64) {
	m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: decimals, Symbol: "PER"}, nil)
	m.ledger.EXPECT().Fee(gomock.Any()).Return(fee, nil)
}

var ledgerCfg = config.Ledger{Decimals: 8, CallTimeout: time.Second}

// ── Pay ──────────────────────────────────────────────────────────────────────

func TestPaymentService_Pay_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
	ctx := context.Background()

	expectQuote(m, 8, 10_000)
	expectWalletKey(t, m, "pw")
	m.ledger.EXPECT().WithSigner(gomock.Any()).
		DoAndReturn(func(signer adapter.Signer) adapter.LedgerAdapter {
			assert.Equal(t, testOwner.Owner, signer.Principal())
			return m.signed
		})
	m.negotiator.EXPECT().
		Negotiate(gomock.Any(), testOwner, testSpender, uint64(125_010_000)).
		Return(models.NegotiationResult{ID: "neg-1", Target: 125_010_000}, nil)
	m.spender.EXPECT().Spend(gomock.Any(), models.SpendRequest{
		Buyer:         testOwner,
		ItemID:        "game-42",
		Amount:        125_000_000,
		NegotiationID: "neg-1",
	}).Return(models.SpendReceipt{BlockIndex: 17, ItemID: "game-42"}, nil)

	receipt, err := svc.Pay(ctx, models.PaymentRequest{
		Spender:  testSpender,
		Amount:   "1.25",
		ItemID:   "game-42",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentReceipt{
		NegotiationID: "neg-1",
		ItemID:        "game-42",
		Amount:        125_000_000,
		Fee:           10_000,
		BlockIndex:    17,
	}, receipt)
	assert.Same(t, m.signed, m.binder.bound, "negotiator must use the signed ledger")
}

func TestPaymentService_Pay_NegotiationFailureSkipsSpend(t *testing.T) {
	failures := []error{
		markUncertain(ErrApproveSetAmbiguous),
		ErrNegotiationAlreadyInProgress,
		ErrAllowanceInsufficientAfterApprove,
	}

	for _, negErr := range failures {
		t.Run(negErr.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
			expectQuote(m, 8, 0)
			expectWalletKey(t, m, "")
			m.ledger.EXPECT().WithSigner(gomock.Any()).Return(m.signed)
			m.negotiator.EXPECT().Negotiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(models.NegotiationResult{ID: "neg-2"}, negErr)
			// no Spend expectation: any call fails the test

			receipt, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1", ItemID: "x"})
			assert.ErrorIs(t, err, negErr)
			assert.Equal(t, "neg-2", receipt.NegotiationID)
		})
	}
}

func TestPaymentService_Pay_AmbiguousDuplicateEndToEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockWalletVault(ctrl)
	ledger := mock.NewMockLedgerAdapter(ctrl)
	signed := mock.NewMockLedgerAdapter(ctrl)
	spender := mock.NewMockSpender(ctrl)
	negotiator := NewAllowanceNegotiator(ledger, time.Second, nil, nil, logger.Nop())
	svc := NewPaymentService(vault, ledger, spender, negotiator, ledgerCfg, logger.Nop())

	ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: 0}, nil)
	ledger.EXPECT().Fee(gomock.Any()).Return(uint64(1), nil)
	record := testRecord(t)
	vault.EXPECT().Load(gomock.Any()).Return(record, nil)
	vault.EXPECT().KeyMaterial(gomock.Any(), record, "pw").Return(testKeyMaterial(t), nil)
	ledger.EXPECT().WithSigner(gomock.Any()).Return(signed)
	gomock.InOrder(
		signed.EXPECT().Allowance(gomock.Any(), testOwner, testSpender).Return(allowance(0), nil),
		signed.EXPECT().Approve(gomock.Any(), approveArgs{amount: 100, expected: 0}).Return(uint64(0), errDuplicate),
		signed.EXPECT().Allowance(gomock.Any(), testOwner, testSpender).Return(allowance(60), nil),
	)

	_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "99", ItemID: "x", Password: "pw"})
	assert.ErrorIs(t, err, ErrApproveSetAmbiguous)
	assert.True(t, IsOutcomeUncertain(err))
}

func TestPaymentService_Pay_FeePolicy(t *testing.T) {
	feeErr := errors.New("fee endpoint down")

	t.Run("strict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
		m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: 8}, nil)
		m.ledger.EXPECT().Fee(gomock.Any()).Return(uint64(0), feeErr)

		_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1", ItemID: "x"})
		assert.ErrorIs(t, err, ErrFeeUnavailable)
		assert.ErrorIs(t, err, feeErr)
	})

	t.Run("fail open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cfg := ledgerCfg
		cfg.FeeFailOpen = true
		svc, m := newTestPaymentSvc(t, ctrl, cfg)
		m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: 8}, nil)
		m.ledger.EXPECT().Fee(gomock.Any()).Return(uint64(0), feeErr)
		expectWalletKey(t, m, "")
		m.ledger.EXPECT().WithSigner(gomock.Any()).Return(m.signed)
		m.negotiator.EXPECT().Negotiate(gomock.Any(), testOwner, testSpender, uint64(100_000_000)).
			Return(models.NegotiationResult{ID: "n"}, nil)
		m.spender.EXPECT().Spend(gomock.Any(), gomock.Any()).Return(models.SpendReceipt{BlockIndex: 1}, nil)

		receipt, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1", ItemID: "x"})
		require.NoError(t, err)
		assert.Zero(t, receipt.Fee)
	})
}

func TestPaymentService_Pay_MetadataFallbackDecimals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := ledgerCfg
	cfg.Decimals = 2
	svc, m := newTestPaymentSvc(t, ctrl, cfg)
	m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{}, adapter.ErrUnavailable)
	m.ledger.EXPECT().Fee(gomock.Any()).Return(uint64(1), nil)
	expectWalletKey(t, m, "")
	m.ledger.EXPECT().WithSigner(gomock.Any()).Return(m.signed)
	m.negotiator.EXPECT().Negotiate(gomock.Any(), testOwner, testSpender, uint64(151)).
		Return(models.NegotiationResult{ID: "n"}, nil)
	m.spender.EXPECT().Spend(gomock.Any(), gomock.Any()).Return(models.SpendReceipt{}, nil)

	_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1.5", ItemID: "x"})
	require.NoError(t, err)
}

func TestPaymentService_Pay_DefaultSpender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := ledgerCfg
	cfg.Spender = testSpender.Owner
	svc, m := newTestPaymentSvc(t, ctrl, cfg)
	expectQuote(m, 0, 0)
	expectWalletKey(t, m, "")
	m.ledger.EXPECT().WithSigner(gomock.Any()).Return(m.signed)
	m.negotiator.EXPECT().Negotiate(gomock.Any(), testOwner, testSpender, uint64(5)).
		Return(models.NegotiationResult{ID: "n"}, nil)
	m.spender.EXPECT().Spend(gomock.Any(), gomock.Any()).Return(models.SpendReceipt{}, nil)

	_, err := svc.Pay(context.Background(), models.PaymentRequest{Amount: "5", ItemID: "x"})
	require.NoError(t, err)
}

func TestPaymentService_Pay_RejectedBeforeNegotiation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.PaymentRequest
		setup   func(m paymentMocks)
		wantErr error
	}{
		{
			name:    "no spender configured",
			req:     models.PaymentRequest{Amount: "1"},
			wantErr: ErrSpenderNotConfigured,
		},
		{
			name:    "invalid spender principal",
			req:     models.PaymentRequest{Spender: models.Account{Owner: "not-a-principal"}, Amount: "1"},
			wantErr: keys.ErrInvalidPrincipal,
		},
		{
			name: "invalid amount",
			req:  models.PaymentRequest{Spender: testSpender, Amount: "1.2.3"},
			setup: func(m paymentMocks) {
				m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: 8}, nil)
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "zero amount",
			req:  models.PaymentRequest{Spender: testSpender, Amount: "0"},
			setup: func(m paymentMocks) {
				m.ledger.EXPECT().Metadata(gomock.Any()).Return(models.TokenMetadata{Decimals: 8}, nil)
			},
			wantErr: ErrInvalidAmount,
		},
		{
			name: "amount plus fee overflows",
			req:  models.PaymentRequest{Spender: testSpender, Amount: "18446744073709551615"},
			setup: func(m paymentMocks) {
				expectQuote(m, 0, 1)
			},
			wantErr: ErrAmountOverflow,
		},
		{
			name: "no wallet",
			req:  models.PaymentRequest{Spender: testSpender, Amount: "1"},
			setup: func(m paymentMocks) {
				expectQuote(m, 0, 0)
				m.vault.EXPECT().Load(gomock.Any()).Return(models.WalletRecord{}, nil)
			},
			wantErr: ErrWalletNotFound,
		},
		{
			name: "partial record counts as no wallet",
			req:  models.PaymentRequest{Spender: testSpender, Amount: "1"},
			setup: func(m paymentMocks) {
				expectQuote(m, 0, 0)
				m.vault.EXPECT().Load(gomock.Any()).Return(models.WalletRecord{PrincipalID: new(string)}, nil)
			},
			wantErr: ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
			if tt.setup != nil {
				tt.setup(m)
			}

			_, err := svc.Pay(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_Pay_PasswordRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
	expectQuote(m, 0, 0)
	record := testRecord(t)
	m.vault.EXPECT().Load(gomock.Any()).Return(record, nil)
	m.vault.EXPECT().KeyMaterial(gomock.Any(), record, "").Return(models.KeyMaterial{}, ErrPasswordRequired)

	_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1"})
	assert.ErrorIs(t, err, ErrPasswordRequired)
}

func TestPaymentService_Pay_SpendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newTestPaymentSvc(t, ctrl, ledgerCfg)
	expectQuote(m, 0, 0)
	expectWalletKey(t, m, "")
	m.ledger.EXPECT().WithSigner(gomock.Any()).Return(m.signed)
	m.negotiator.EXPECT().Negotiate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.NegotiationResult{ID: "n"}, nil)
	m.spender.EXPECT().Spend(gomock.Any(), gomock.Any()).Return(models.SpendReceipt{}, adapter.ErrConflict)

	_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1"})
	assert.ErrorIs(t, err, ErrSpendFailed)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestPaymentService_Pay_Offline(t *testing.T) {
	svc := NewPaymentService(nil, nil, nil, nil, ledgerCfg, logger.Nop())
	_, err := svc.Pay(context.Background(), models.PaymentRequest{Spender: testSpender, Amount: "1"})
	assert.ErrorIs(t, err, ErrLedgerNotConfigured)
}
