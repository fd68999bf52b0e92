// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	hashKey       string
	tokenKey      string
	tokenIssuer   string
	tokenDuration time.Duration

	signer Signer

	logger *logger.Logger
}

// NewHTTPLedgerAdapter builds the gateway client for adapterCfg.Address.
// The HMAC pool is initialised with hashKey when it is set.
func NewHTTPLedgerAdapter(adapterCfg config.Adapter, hashKey string, log *logger.Logger) (LedgerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	return &httpLedgerAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:           utils.NewUUIDGenerator(),
		hashKey:       hashKey,
		tokenKey:      adapterCfg.TokenKey,
		tokenIssuer:   adapterCfg.TokenIssuer,
		tokenDuration: adapterCfg.TokenDuration,
		logger:        log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpLedgerAdapter) WithSigner(signer Signer) LedgerAdapter {
	clone := *h
	clone.signer = signer
	return &clone
}

func (h *httpLedgerAdapter) Allowance(ctx context.Context, owner, spender models.Account) (models.Allowance, error) {
	var out models.Allowance
	if err := h.call(ctx, "allowance", models.RouteAllowance, models.AllowanceArgs{Account: owner, Spender: spender}, false, &out); err != nil {
		return models.Allowance{}, err
	}
	return out, nil
}

func (h *httpLedgerAdapter) Approve(ctx context.Context, args models.ApproveArgs) (uint64, error) {
	return h.submit(ctx, "approve", models.RouteApprove, args)
}

func (h *httpLedgerAdapter) Transfer(ctx context.Context, args models.TransferArgs) (uint64, error) {
	return h.submit(ctx, "transfer", models.RouteTransfer, args)
}

func (h *httpLedgerAdapter) TransferFrom(ctx context.Context, args models.TransferFromArgs) (uint64, error) {
	return h.submit(ctx, "transfer_from", models.RouteTransferFrom, args)
}

func (h *httpLedgerAdapter) Fee(ctx context.Context) (uint64, error) {
	var out models.FeeResponse
	if err := h.call(ctx, "fee", models.RouteFee, nil, false, &out); err != nil {
		return 0, err
	}
	return out.Fee.Uint64(), nil
}

func (h *httpLedgerAdapter) Metadata(ctx context.Context) (models.TokenMetadata, error) {
	var out models.TokenMetadata
	if err := h.call(ctx, "metadata", models.RouteMetadata, nil, false, &out); err != nil {
		return models.TokenMetadata{}, err
	}
	return out, nil
}

func (h *httpLedgerAdapter) BalanceOf(ctx context.Context, account models.Account) (uint64, error) {
	var out models.BalanceResponse
	if err := h.call(ctx, "balance", models.RouteBalance, account, false, &out); err != nil {
		return 0, err
	}
	return out.Balance.Uint64(), nil
}

func (h *httpLedgerAdapter) Blocks(ctx context.Context, start, length uint64) ([]models.Block, uint64, error) {
	var out models.GetBlocksResult
	args := models.GetBlocksArgs{Start: models.Nat(start), Length: models.Nat(length)}
	if err := h.call(ctx, "blocks", models.RouteBlocks, args, false, &out); err != nil {
		return nil, 0, err
	}

	blocks := make([]models.Block, 0, len(out.Blocks))
	for _, raw := range out.Blocks {
		block, err := DecodeBlock(raw)
		if err != nil {
			h.logger.Err(err).Str("func", "httpLedgerAdapter.Blocks").Uint64("block", raw.ID.Uint64()).Msg("rejecting malformed block")
			return nil, 0, err
		}
		blocks = append(blocks, block)
	}

	return blocks, out.LogLength.Uint64(), nil
}

// submit sends a signed mutating call and unwraps the ledger result variant.
func (h *httpLedgerAdapter) submit(ctx context.Context, op, route string, args any) (uint64, error) {
	var result models.TxResult
	if err := h.call(ctx, op, route, args, true, &result); err != nil {
		return 0, err
	}

	switch {
	case result.Err != nil:
		return 0, fmt.Errorf("%s: %w", op, result.Err)
	case result.Ok != nil:
		return result.Ok.Uint64(), nil
	default:
		return 0, fmt.Errorf("%s: %w: neither Ok nor Err", op, ErrMalformedResponse)
	}
}

// call performs one request. A nil body issues GET, otherwise POST.
func (h *httpLedgerAdapter) call(ctx context.Context, op, route string, body any, signed bool, out any) error {
	req, err := h.newRequest(ctx, body, signed)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var resp *resty.Response
	if body == nil {
		resp, err = req.Get(route)
	} else {
		resp, err = req.Post(route)
	}
	if err != nil {
		h.logger.Err(err).Str("func", "httpLedgerAdapter.call").Str("op", op).Msg("ledger request failed")
		return mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrMalformedResponse, err)
	}

	return nil
}

func (h *httpLedgerAdapter) newRequest(ctx context.Context, body any, signed bool) (*resty.Request, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderRequestID, h.ids.Generate())

	principal := keys.AnonymousPrincipal
	if h.signer != nil {
		principal = h.signer.Principal()
	}

	if h.tokenKey != "" {
		token, err := utils.GenerateJWTToken(h.tokenIssuer, principal, h.tokenDuration, h.tokenKey)
		if err != nil {
			return nil, fmt.Errorf("issue bearer token: %w", err)
		}
		req.SetHeader(models.HeaderAuthorization, "Bearer "+token.String())
	}

	if body == nil {
		if signed {
			return nil, ErrNoSigner
		}
		return req, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req.SetHeader("Content-Type", "application/json").SetBody(payload)

	if h.hashKey != "" {
		req.SetHeader(models.HeaderHash, utils.HashHex(payload))
	}

	if signed {
		if h.signer == nil {
			return nil, ErrNoSigner
		}
		sig, err := h.signer.Sign(payload)
		if err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
		req.SetHeader(models.HeaderSenderPubkey, hex.EncodeToString(h.signer.PublicKey())).
			SetHeader(models.HeaderSenderSig, hex.EncodeToString(sig))
	}

	return req, nil
}
