// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Init builds the gateway router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	router.Get(models.RouteVersion, h.getVersion)
	if h.gatherer != nil {
		router.Handle(models.RouteMetrics, promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{DisableCompression: true}))
	}

	// purchase endpoint of the simulated spender, outside the ledger's auth
	router.With(h.checkHash).Post(models.RoutePurchase, h.purchase)

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.checkHash)

		// queries
		r.Get(models.RouteFee, h.fee)
		r.Get(models.RouteMetadata, h.metadata)
		r.Post(models.RouteBalance, h.balance)
		r.Post(models.RouteAllowance, h.allowance)
		r.Post(models.RouteBlocks, h.blocks)

		// signed calls
		r.Group(func(r chi.Router) {
			r.Use(h.verifySignature)

			r.Post(models.RouteApprove, h.approve)
			r.Post(models.RouteTransfer, h.transfer)
			r.Post(models.RouteTransferFrom, h.transferFrom)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
