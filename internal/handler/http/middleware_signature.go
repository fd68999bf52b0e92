// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// verifySignature authenticates the caller of a mutating call.
//
// X-Sender-Sig must be a compact secp256k1 signature of SHA-256(body) that
// recovers to X-Sender-Pubkey. The caller principal is derived from that key
// and must equal the bearer token principal when one was verified. It is
// then stored in the request context for the handlers.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		principal, err := h.signerPrincipal(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("request signature rejected")
			writeError(w, err)
			return
		}

		if tokenPrincipal, ok := utils.GetPrincipalFromContext(r.Context()); ok && tokenPrincipal != principal {
			log.Error().Str("func", "*Handler.verifySignature").
				Str("token principal", tokenPrincipal).
				Str("signer principal", principal).
				Msg("principal mismatch")
			writeError(w, ErrPrincipalMismatch)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
	})
}

func (h *Handler) signerPrincipal(r *http.Request) (string, error) {
	pubHex := r.Header.Get(models.HeaderSenderPubkey)
	sigHex := r.Header.Get(models.HeaderSenderSig)
	if pubHex == "" || sigHex == "" {
		return "", ErrMissingSignature
	}

	pub, err := hex.DecodeString(pubHex)
	if err != nil {
		return "", fmt.Errorf("%w: public key: %w", ErrInvalidSignature, err)
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil {
		return "", fmt.Errorf("%w: signature: %w", ErrInvalidSignature, err)
	}

	body, err := readBody(r)
	if err != nil {
		return "", err
	}

	if err = keys.VerifyCompact(pub, body, sig); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	principal, err := keys.PrincipalOfPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return principal, nil
}
