// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
	"github.com/rs/zerolog"
)

// inflightGuard admits one negotiation per (owner, spender) at a time.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]struct{})}
}

func (g *inflightGuard) acquire(owner, spender models.Account) (release func(), ok bool) {
	key := owner.Key() + "|" + spender.Key()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, true
}

// Negotiator is the [AllowanceNegotiator] over an [adapter.LedgerAdapter].
type Negotiator struct {
	ledger      adapter.LedgerAdapter
	callTimeout time.Duration

	guard   *inflightGuard
	nonces  *NonceSource
	ids     *utils.UUIDGenerator
	metrics *metrics.NegotiationMetrics

	logger *logger.Logger
}

// NewAllowanceNegotiator returns a negotiator bound to ledger. The ledger is
// normally replaced per payment with [Negotiator.WithLedger] so that approve
// calls are signed by the paying wallet. callTimeout <= 0 selects
// [config.DefaultCallTimeout]; a nil m disables metrics registration.
func NewAllowanceNegotiator(
	ledger adapter.LedgerAdapter,
	callTimeout time.Duration,
	nonces *NonceSource,
	m *metrics.NegotiationMetrics,
	log *logger.Logger,
) *Negotiator {
	if callTimeout <= 0 {
		callTimeout = config.DefaultCallTimeout
	}
	if nonces == nil {
		nonces = NewNonceSource()
	}
	if m == nil {
		m = metrics.NewNegotiationMetrics(nil)
	}

	return &Negotiator{
		ledger:      ledger,
		callTimeout: callTimeout,
		guard:       newInflightGuard(),
		nonces:      nonces,
		ids:         utils.NewUUIDGenerator(),
		metrics:     m,
		logger:      log,
	}
}

// WithLedger returns a negotiator that talks to ledger and shares the
// in-flight guard, nonce source and metrics of the receiver.
func (n *Negotiator) WithLedger(ledger adapter.LedgerAdapter) AllowanceNegotiator {
	clone := *n
	clone.ledger = ledger
	return &clone
}

// Negotiate brings the spender's allowance to exactly target. A non-zero
// allowance is cleared before the new one is approved, and the result is
// read back from the ledger. Only one negotiation per owner and spender pair
// runs at a time.
func (n *Negotiator) Negotiate(ctx context.Context, owner, spender models.Account, target uint64) (res models.NegotiationResult, err error) {
	res = models.NegotiationResult{ID: n.ids.Generate(), Target: target}
	log := n.logger.With().
		Str("negotiation_id", res.ID).
		Str("owner", owner.Owner).
		Str("spender", spender.Owner).
		Uint64("target", target).
		Logger()

	if n.ledger == nil {
		return res, ErrLedgerNotConfigured
	}

	release, ok := n.guard.acquire(owner, spender)
	if !ok {
		n.metrics.Outcomes.WithLabelValues(metrics.OutcomeInProgress).Inc()
		log.Warn().Msg("negotiation already in progress")
		return res, ErrNegotiationAlreadyInProgress
	}
	defer release()

	start := time.Now()
	defer func() {
		n.metrics.Duration.Observe(time.Since(start).Seconds())
		n.metrics.Outcomes.WithLabelValues(outcomeOf(res, err)).Inc()
		if err != nil {
			log.Error().Err(err).Bool("uncertain", IsOutcomeUncertain(err)).Msg("allowance negotiation failed")
			return
		}
		log.Info().
			Uint64("initial", res.Initial).
			Uint64("final", res.Final).
			Bool("noop", res.NoOp).
			Msg("allowance negotiated")
	}()

	cur, err := n.query(ctx, owner, spender)
	if err != nil {
		return res, err
	}
	res.Initial = cur

	if cur == target {
		res.NoOp = true
		res.Final = cur
		return res, nil
	}

	if cur != 0 {
		res.Cleared = true
		if err = n.clear(ctx, &log, owner, spender, cur); err != nil {
			return res, err
		}
	}

	if target != 0 {
		if err = ctx.Err(); err != nil {
			// nothing submitted for this step; the allowance is 0 or unchanged
			return res, fmt.Errorf("%w: %w", ErrApproveSetFailed, err)
		}
		res.Set = true
		if err = n.set(ctx, &log, owner, spender, target); err != nil {
			return res, err
		}
	}

	final, err := n.query(ctx, owner, spender)
	if err != nil {
		return res, markUncertain(err)
	}
	res.Final = final

	if final < target {
		return res, fmt.Errorf("%w: have %d, want %d", ErrAllowanceInsufficientAfterApprove, final, target)
	}

	return res, nil
}

// clear submits approve(0) guarded by expected_allowance = cur.
func (n *Negotiator) clear(ctx context.Context, log *zerolog.Logger, owner, spender models.Account, cur uint64) error {
	err := n.approve(ctx, models.StepClear, owner, spender, 0, cur)
	switch {
	case err == nil:
		return nil

	case models.IsLedgerError(err, models.LedgerErrDuplicate):
		log.Debug().Msg("clear approve already applied")
		return nil

	case adapter.IsTransient(err):
		after, qerr := n.query(ctx, owner, spender)
		if qerr == nil && after == 0 {
			log.Warn().Err(err).Msg("clear approve outcome recovered by re-query")
			return nil
		}
		return markUncertain(fmt.Errorf("%w: %w", ErrApproveClearFailed, errors.Join(err, qerr)))

	default:
		return fmt.Errorf("%w: %w", ErrApproveClearFailed, err)
	}
}

// set submits approve(target) guarded by expected_allowance = 0.
func (n *Negotiator) set(ctx context.Context, log *zerolog.Logger, owner, spender models.Account, target uint64) error {
	err := n.approve(ctx, models.StepSet, owner, spender, target, 0)
	switch {
	case err == nil:
		return nil

	case models.IsLedgerError(err, models.LedgerErrDuplicate):
		after, qerr := n.query(ctx, owner, spender)
		if qerr == nil && after >= target {
			log.Debug().Msg("set approve already applied")
			return nil
		}
		return markUncertain(fmt.Errorf("%w: %w", ErrApproveSetAmbiguous, errors.Join(err, qerr)))

	case adapter.IsTransient(err):
		after, qerr := n.query(ctx, owner, spender)
		if qerr == nil && after >= target {
			log.Warn().Err(err).Msg("set approve outcome recovered by re-query")
			return nil
		}
		return markUncertain(fmt.Errorf("%w: %w", ErrApproveSetFailed, errors.Join(err, qerr)))

	default:
		return fmt.Errorf("%w: %w", ErrApproveSetFailed, err)
	}
}

func (n *Negotiator) query(ctx context.Context, owner, spender models.Account) (uint64, error) {
	callCtx, cancel := context.WithTimeout(ctx, n.callTimeout)
	defer cancel()

	allowance, err := n.ledger.Allowance(callCtx, owner, spender)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAllowanceQueryFailed, err)
	}
	return allowance.Allowance.Uint64(), nil
}

// approve submits one icrc2_approve. A submitted approve is never abandoned
// because the caller's context was cancelled; only callTimeout bounds it.
func (n *Negotiator) approve(ctx context.Context, step models.NegotiationStep, owner, spender models.Account, amount, expected uint64) error {
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.callTimeout)
	defer cancel()

	_, err := n.ledger.Approve(callCtx, models.ApproveArgs{
		FromSubaccount:    owner.Subaccount,
		Spender:           spender,
		Amount:            models.Nat(amount),
		ExpectedAllowance: models.NatPtr(expected),
		CreatedAtTime:     models.NatPtr(n.nonces.Next()),
	})

	n.metrics.ApproveCalls.WithLabelValues(string(step), approveResult(err)).Inc()
	return err
}

func approveResult(err error) string {
	switch {
	case err == nil:
		return metrics.ApproveOK
	case models.IsLedgerError(err, models.LedgerErrDuplicate):
		return metrics.ApproveDuplicate
	case adapter.IsTransient(err):
		return metrics.ApproveTimeout
	default:
		return metrics.ApproveRejected
	}
}

func outcomeOf(res models.NegotiationResult, err error) string {
	switch {
	case err == nil && res.NoOp:
		return metrics.OutcomeNoOp
	case err == nil:
		return metrics.OutcomeSuccess
	case IsOutcomeUncertain(err):
		return metrics.OutcomeUncertain
	default:
		return metrics.OutcomeFailed
	}
}
