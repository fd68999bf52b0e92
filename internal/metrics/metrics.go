// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the prometheus collectors of the wallet core and
// the ledger simulator. Collectors are registered on an explicit registry so
// tests can create isolated instances.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "peridot_vault"

// Negotiation outcome label values.
const (
	OutcomeSuccess    = "success"
	OutcomeNoOp       = "noop"
	OutcomeFailed     = "failed"
	OutcomeUncertain  = "uncertain"
	OutcomeInProgress = "in_progress"
)

// Approve call result label values.
const (
	ApproveOK        = "ok"
	ApproveDuplicate = "duplicate"
	ApproveTimeout   = "timeout"
	ApproveRejected  = "rejected"
)

// NegotiationMetrics instruments the allowance negotiator.
type NegotiationMetrics struct {
	Outcomes     *prometheus.CounterVec
	ApproveCalls *prometheus.CounterVec
	Duration     prometheus.Histogram
}

// NewNegotiationMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewNegotiationMetrics(reg prometheus.Registerer) *NegotiationMetrics {
	m := &NegotiationMetrics{
		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "outcomes_total",
			Help:      "Allowance negotiations by final outcome.",
		}, []string{"outcome"}),
		ApproveCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "approve_calls_total",
			Help:      "icrc2_approve submissions by step and result.",
		}, []string{"step", "result"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "negotiation",
			Name:      "duration_seconds",
			Help:      "Wall time of a complete negotiation.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Outcomes, m.ApproveCalls, m.Duration)
	}

	return m
}

// LedgerMetrics instruments the ledger simulator.
type LedgerMetrics struct {
	Requests  *prometheus.CounterVec
	Latency   *prometheus.HistogramVec
	LedgerErr *prometheus.CounterVec
	Blocks    prometheus.Gauge
}

// NewLedgerMetrics creates the simulator collectors and registers them on reg.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	m := &LedgerMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "http_requests_total",
			Help:      "Gateway requests by route and status code.",
		}, []string{"route", "code"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "http_request_duration_seconds",
			Help:      "Gateway request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		LedgerErr: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "errors_total",
			Help:      "Typed ledger errors returned, by variant.",
		}, []string{"kind"}),
		Blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "log_length",
			Help:      "Number of blocks in the simulated ledger.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Requests, m.Latency, m.LedgerErr, m.Blocks)
	}

	return m
}

// NewRegistry returns a registry preloaded with the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
