// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// purchase plays the spender side of a payment: it pulls the approved
// amount from the buyer into the treasury with icrc2_transfer_from.
// Ledger rejections answer 409.
func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.spender == "" {
		h.reject(w, r, "*Handler.purchase", ErrSpenderNotConfigured)
		return
	}

	var req models.SpendRequest
	if err := decodeBody(r, &req); err != nil {
		h.reject(w, r, "*Handler.purchase", err)
		return
	}
	if err := h.validate(r, req); err != nil {
		h.reject(w, r, "*Handler.purchase", err)
		return
	}

	index, err := h.ledger.TransferFrom(h.spender, models.TransferFromArgs{
		From:   req.Buyer,
		To:     h.treasury,
		Amount: req.Amount,
		Memo:   []byte(req.NegotiationID),
	})

	var lerr *models.LedgerError
	switch {
	case errors.As(err, &lerr):
		log.Info().Str("func", "*Handler.purchase").
			Str("item", req.ItemID).
			Str("buyer", req.Buyer.Owner).
			Str("kind", string(lerr.Kind)).
			Msg("purchase rejected by ledger")
		utils.WriteJSON(w, models.ErrorResponse{Error: fmt.Sprintf("%s: %s", app.MsgPurchaseFailed, lerr)}, http.StatusConflict)
		return
	case err != nil:
		h.reject(w, r, "*Handler.purchase", err)
		return
	}

	log.Info().Str("func", "*Handler.purchase").
		Str("item", req.ItemID).
		Str("buyer", req.Buyer.Owner).
		Uint64("block", index).
		Msg("purchase settled")

	utils.WriteJSON(w, models.SpendReceipt{BlockIndex: models.Nat(index), ItemID: req.ItemID}, http.StatusOK)
}
