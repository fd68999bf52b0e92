// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NegotiationStep names a step of the clear-then-set approve protocol.
type NegotiationStep string

const (
	StepQuery  NegotiationStep = "query"
	StepClear  NegotiationStep = "clear"
	StepSet    NegotiationStep = "set"
	StepVerify NegotiationStep = "verify"
)

// NegotiationResult summarises a successful allowance negotiation.
type NegotiationResult struct {
	// ID correlates logs and metrics of one run.
	ID string
	// Target is the allowance that was requested.
	Target uint64
	// Initial is the allowance observed by the first query.
	Initial uint64
	// Final is the allowance observed by the verify query.
	Final uint64
	// NoOp is true when Initial already equalled Target.
	NoOp bool
	// Cleared is true when a clear approve was submitted.
	Cleared bool
	// Set is true when a set approve was submitted.
	Set bool
}
