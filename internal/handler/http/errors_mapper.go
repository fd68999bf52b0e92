// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

type errorReply struct {
	status  int
	message string
}

var errorReplyMap = map[error]errorReply{
	ErrInvalidRequest:             {http.StatusBadRequest, app.MsgInvalidDataProvided},
	keys.ErrInvalidPrincipal:      {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrIntegrityCheckFailed:       {http.StatusBadRequest, app.MsgInvalidHash},
	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgMissingToken},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	ErrMissingSignature:           {http.StatusUnauthorized, app.MsgInvalidSignature},
	ErrInvalidSignature:           {http.StatusUnauthorized, app.MsgInvalidSignature},
	ErrPrincipalMismatch:          {http.StatusForbidden, app.MsgPrincipalMismatch},
	ErrSpenderNotConfigured:       {http.StatusServiceUnavailable, app.MsgNotConfigured},
	ledger.ErrNotConfigured:       {http.StatusServiceUnavailable, app.MsgNotConfigured},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorReplyMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError answers with the status and user message mapped from err.
func writeError(w http.ResponseWriter, err error) {
	reply := replyFromError(err)
	utils.WriteJSON(w, models.ErrorResponse{Error: reply.message}, reply.status)
}
