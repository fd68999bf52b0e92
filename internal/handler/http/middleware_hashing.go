// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// maxBodySize bounds every gateway request body.
const maxBodySize = 1 << 20

// checkHash verifies the HashSHA256 header against the raw body when a hash
// key is configured. Bodyless requests pass through.
func (h *Handler) checkHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := readBody(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.checkHash").Msg("failed to read request body")
			writeError(w, err)
			return
		}
		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		received := r.Header.Get(models.HeaderHash)
		if !utils.EqualHashHex(body, received) {
			log.Error().Str("func", "*Handler.checkHash").
				Str("hash from request", received).
				Msg("hashes are not equal")
			writeError(w, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// readBody reads the whole body and restores it for the next reader.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if len(body) > maxBodySize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidRequest, maxBodySize)
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}
