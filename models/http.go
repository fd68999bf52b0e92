// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Gateway headers.
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderHash          = "HashSHA256"
	HeaderSenderPubkey  = "X-Sender-Pubkey"
	HeaderSenderSig     = "X-Sender-Sig"
)

// Gateway routes.
const (
	RouteAllowance    = "/api/v1/icrc2/allowance"
	RouteApprove      = "/api/v1/icrc2/approve"
	RouteTransferFrom = "/api/v1/icrc2/transfer_from"
	RouteFee          = "/api/v1/icrc1/fee"
	RouteMetadata     = "/api/v1/icrc1/metadata"
	RouteBalance      = "/api/v1/icrc1/balance"
	RouteTransfer     = "/api/v1/icrc1/transfer"
	RouteBlocks       = "/api/v1/icrc3/blocks"
	RoutePurchase     = "/api/v1/purchase"
	RouteVersion      = "/api/version"
	RouteMetrics      = "/metrics"
)

// ErrorResponse is the body of every non-2xx gateway answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
