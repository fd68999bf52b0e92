// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// auth enforces bearer JWT authentication when a token key is configured.
//
// On success the token subject is stored in the request context with
// [utils.WithPrincipal] and added to the request logger. Without a token key
// the middleware is a pass-through and the caller stays anonymous until a
// signature names it.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.tokenKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get(models.HeaderAuthorization)
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, ErrInvalidAuthorizationHeader)
			return
		}

		scoped := log.With().Str("principal", token.Principal).Logger()
		ctx := utils.WithPrincipal(scoped.WithContext(r.Context()), token.Principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
