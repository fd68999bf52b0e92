// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

type httpSpender struct {
	client  *utils.HTTPClient
	ids     *utils.UUIDGenerator
	hashKey string
	logger  *logger.Logger
}

// NewHTTPSpender builds the purchase endpoint client for
// adapterCfg.PurchaseAddress.
func NewHTTPSpender(adapterCfg config.Adapter, hashKey string, log *logger.Logger) (Spender, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.PurchaseAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase address: %w", err)
	}

	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	return &httpSpender{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:     utils.NewUUIDGenerator(),
		hashKey: hashKey,
		logger:  log,
	}, nil
}

// Spend implements [Spender]. The purchase endpoint pulls the approved
// amount with icrc2_transfer_from and answers with the block index.
func (s *httpSpender) Spend(ctx context.Context, spend models.SpendRequest) (models.SpendReceipt, error) {
	payload, err := json.Marshal(spend)
	if err != nil {
		return models.SpendReceipt{}, fmt.Errorf("spend: encode request: %w", err)
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader(models.HeaderRequestID, s.ids.Generate()).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if s.hashKey != "" {
		req.SetHeader(models.HeaderHash, utils.HashHex(payload))
	}

	resp, err := req.Post(models.RoutePurchase)
	if err != nil {
		s.logger.Err(err).Str("func", "httpSpender.Spend").Str("item", spend.ItemID).Msg("purchase request failed")
		return models.SpendReceipt{}, mapTransportError("spend", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SpendReceipt{}, fmt.Errorf("spend: %w", err)
	}

	var receipt models.SpendReceipt
	if err = json.Unmarshal(resp.Body(), &receipt); err != nil {
		return models.SpendReceipt{}, fmt.Errorf("spend: %w: %w", ErrMalformedResponse, err)
	}

	return receipt, nil
}
