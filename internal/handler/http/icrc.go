// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// maxBlocksPerRequest caps the length of one icrc3 range.
const maxBlocksPerRequest = 1000

func (h *Handler) fee(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FeeResponse{Fee: models.Nat(h.ledger.Fee())}, http.StatusOK)
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.ledger.Metadata(), http.StatusOK)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := decodeBody(r, &account); err != nil {
		h.reject(w, r, "*Handler.balance", err)
		return
	}
	if err := h.validate(r, account); err != nil {
		h.reject(w, r, "*Handler.balance", err)
		return
	}

	utils.WriteJSON(w, models.BalanceResponse{Balance: models.Nat(h.ledger.BalanceOf(account))}, http.StatusOK)
}

func (h *Handler) allowance(w http.ResponseWriter, r *http.Request) {
	var args models.AllowanceArgs
	if err := decodeBody(r, &args); err != nil {
		h.reject(w, r, "*Handler.allowance", err)
		return
	}
	if err := h.validate(r, args); err != nil {
		h.reject(w, r, "*Handler.allowance", err)
		return
	}

	utils.WriteJSON(w, h.ledger.Allowance(args.Account, args.Spender), http.StatusOK)
}

func (h *Handler) blocks(w http.ResponseWriter, r *http.Request) {
	var args models.GetBlocksArgs
	if err := decodeBody(r, &args); err != nil {
		h.reject(w, r, "*Handler.blocks", err)
		return
	}

	length := min(args.Length.Uint64(), maxBlocksPerRequest)
	utils.WriteJSON(w, h.ledger.Blocks(args.Start.Uint64(), length), http.StatusOK)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	var args models.ApproveArgs
	if err := decodeBody(r, &args); err != nil {
		h.reject(w, r, "*Handler.approve", err)
		return
	}
	if err := h.validate(r, args); err != nil {
		h.reject(w, r, "*Handler.approve", err)
		return
	}

	caller, _ := utils.GetPrincipalFromContext(r.Context())
	index, err := h.ledger.Approve(caller, args)
	h.writeTxResult(w, r, "*Handler.approve", index, err)
}

func (h *Handler) transfer(w http.ResponseWriter, r *http.Request) {
	var args models.TransferArgs
	if err := decodeBody(r, &args); err != nil {
		h.reject(w, r, "*Handler.transfer", err)
		return
	}
	if err := h.validate(r, args); err != nil {
		h.reject(w, r, "*Handler.transfer", err)
		return
	}

	caller, _ := utils.GetPrincipalFromContext(r.Context())
	index, err := h.ledger.Transfer(caller, args)
	h.writeTxResult(w, r, "*Handler.transfer", index, err)
}

func (h *Handler) transferFrom(w http.ResponseWriter, r *http.Request) {
	var args models.TransferFromArgs
	if err := decodeBody(r, &args); err != nil {
		h.reject(w, r, "*Handler.transferFrom", err)
		return
	}
	if err := h.validate(r, args); err != nil {
		h.reject(w, r, "*Handler.transferFrom", err)
		return
	}

	caller, _ := utils.GetPrincipalFromContext(r.Context())
	index, err := h.ledger.TransferFrom(caller, args)
	h.writeTxResult(w, r, "*Handler.transferFrom", index, err)
}

// writeTxResult answers 200 with the Ok/Err variant. Ledger rejections are
// part of the variant; any other error is a transport-level failure.
func (h *Handler) writeTxResult(w http.ResponseWriter, r *http.Request, fn string, index uint64, err error) {
	var lerr *models.LedgerError
	switch {
	case errors.As(err, &lerr):
		logger.FromRequest(r).Info().Str("func", fn).Str("kind", string(lerr.Kind)).Msg("ledger rejected call")
		utils.WriteJSON(w, models.TxResult{Err: lerr}, http.StatusOK)
	case err != nil:
		h.reject(w, r, fn, err)
	default:
		utils.WriteJSON(w, models.TxResult{Ok: models.NatPtr(index)}, http.StatusOK)
	}
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, fn string, err error) {
	logger.FromRequest(r).Err(err).Str("func", fn).Msg("request rejected")
	writeError(w, err)
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidRequest)
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// validate runs the request validator and tags failures as bad requests.
func (h *Handler) validate(r *http.Request, v any, fields ...string) error {
	if err := h.validator.Validate(r.Context(), v, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}
