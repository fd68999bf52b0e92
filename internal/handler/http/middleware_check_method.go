// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler.
//
// Gateway routes are static, so the matched route is found by comparing
// patterns with the request path. The reply is a JSON [models.ErrorResponse]
// with an Allow header listing the registered methods. Paths that match no
// route at all answer 404.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if len(foundRoute.Handlers) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		allowed := make([]string, 0, len(foundRoute.Handlers))
		for method := range foundRoute.Handlers {
			allowed = append(allowed, method)
		}
		slices.Sort(allowed)

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
	}
}
