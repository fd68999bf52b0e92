// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/utils"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// Defaults for the deduplication window.
const (
	DefaultTxWindow       = 24 * time.Hour
	DefaultPermittedDrift = 2 * time.Minute
)

// Config describes the simulated token.
type Config struct {
	Name     string
	Symbol   string
	Decimals uint8
	Fee      uint64

	TxWindow       time.Duration
	PermittedDrift time.Duration
}

type allowanceKey struct {
	owner   string
	spender string
}

type allowanceEntry struct {
	amount    uint64
	expiresAt *uint64
}

type dedupEntry struct {
	block     uint64
	createdAt uint64
}

// Ledger is safe for concurrent use. Every mutating call is applied
// atomically under one mutex.
type Ledger struct {
	mu sync.Mutex

	cfg Config
	now func() time.Time

	balances   map[string]uint64
	allowances map[allowanceKey]allowanceEntry
	dedup      map[string]dedupEntry
	blocks     []models.Value
	lastHash   []byte

	metrics *metrics.LedgerMetrics
}

// Option customises a Ledger.
type Option func(*Ledger)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithMetrics reports ledger errors and the log length.
func WithMetrics(m *metrics.LedgerMetrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// New returns an empty ledger.
func New(cfg Config, opts ...Option) *Ledger {
	if cfg.TxWindow <= 0 {
		cfg.TxWindow = DefaultTxWindow
	}
	if cfg.PermittedDrift <= 0 {
		cfg.PermittedDrift = DefaultPermittedDrift
	}

	l := &Ledger{
		cfg:        cfg,
		now:        time.Now,
		balances:   make(map[string]uint64),
		allowances: make(map[allowanceKey]allowanceEntry),
		dedup:      make(map[string]dedupEntry),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Fee returns the configured fee.
func (l *Ledger) Fee() uint64 {
	return l.cfg.Fee
}

// Metadata returns the token description.
func (l *Ledger) Metadata() models.TokenMetadata {
	return models.TokenMetadata{
		Name:     l.cfg.Name,
		Symbol:   l.cfg.Symbol,
		Decimals: l.cfg.Decimals,
		Fee:      models.Nat(l.cfg.Fee),
	}
}

// BalanceOf returns the balance of account.
func (l *Ledger) BalanceOf(account models.Account) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.balances[account.Key()]
}

// Allowance returns the allowance of owner for spender. Expired allowances
// read as zero.
func (l *Ledger) Allowance(owner, spender models.Account) models.Allowance {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.allowanceOf(owner, spender, l.nowNanos())
	out := models.Allowance{Allowance: models.Nat(entry.amount)}
	if entry.expiresAt != nil {
		out.ExpiresAt = models.NatPtr(*entry.expiresAt)
	}
	return out
}

// Mint credits amount to account without charging a fee.
func (l *Ledger) Mint(to models.Account, amount uint64) (uint64, error) {
	if err := validateAccount(to); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	balance := l.balances[to.Key()]
	if balance > math.MaxUint64-amount {
		return 0, l.reject(errGeneric(1, "balance overflow"))
	}
	l.balances[to.Key()] = balance + amount

	tx := (&txFields{}).text("op", OpMint).nat("amt", amount).account("to", to)
	return l.appendBlock(l.nowNanos(), nil, tx), nil
}

// Approve applies icrc2_approve issued by caller.
func (l *Ledger) Approve(caller string, args models.ApproveArgs) (uint64, error) {
	from := models.Account{Owner: caller, Subaccount: args.FromSubaccount}
	if err := validateAccount(from); err != nil {
		return 0, err
	}
	if err := validateAccount(args.Spender); err != nil {
		return 0, err
	}
	if from.Key() == args.Spender.Key() {
		return 0, errGeneric(2, "self approval is not allowed")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowNanos()
	if err := l.checkCommon(args.Fee, args.CreatedAtTime, now); err != nil {
		return 0, err
	}
	key, err := dedupKey(OpApprove, caller, args)
	if err != nil {
		return 0, err
	}
	if err := l.checkDuplicate(key, args.CreatedAtTime, now); err != nil {
		return 0, err
	}

	if args.ExpiresAt != nil && args.ExpiresAt.Uint64() < now {
		return 0, l.reject(errExpired(now))
	}

	balance := l.balances[from.Key()]
	if balance < l.cfg.Fee {
		return 0, l.reject(errInsufficientFunds(balance))
	}

	current := l.allowanceOf(from, args.Spender, now)
	if args.ExpectedAllowance != nil && args.ExpectedAllowance.Uint64() != current.amount {
		return 0, l.reject(errAllowanceChanged(current.amount))
	}

	l.balances[from.Key()] = balance - l.cfg.Fee
	ak := allowanceKey{owner: from.Key(), spender: args.Spender.Key()}
	if args.Amount == 0 {
		delete(l.allowances, ak)
	} else {
		entry := allowanceEntry{amount: args.Amount.Uint64()}
		if args.ExpiresAt != nil {
			exp := args.ExpiresAt.Uint64()
			entry.expiresAt = &exp
		}
		l.allowances[ak] = entry
	}

	tx := (&txFields{}).
		text("op", OpApprove).
		nat("amt", args.Amount.Uint64()).
		account("from", from).
		account("spender", args.Spender).
		optNat("expected_allowance", args.ExpectedAllowance).
		optNat("expires_at", args.ExpiresAt).
		optNat("created_at_time", args.CreatedAtTime).
		blob("memo", args.Memo)

	return l.commit(key, args.CreatedAtTime, now, tx), nil
}

// Transfer applies icrc1_transfer issued by caller.
func (l *Ledger) Transfer(caller string, args models.TransferArgs) (uint64, error) {
	from := models.Account{Owner: caller, Subaccount: args.FromSubaccount}
	if err := validateAccount(from); err != nil {
		return 0, err
	}
	if err := validateAccount(args.To); err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowNanos()
	if err := l.checkCommon(args.Fee, args.CreatedAtTime, now); err != nil {
		return 0, err
	}
	key, err := dedupKey(OpTransfer, caller, args)
	if err != nil {
		return 0, err
	}
	if err := l.checkDuplicate(key, args.CreatedAtTime, now); err != nil {
		return 0, err
	}

	if err := l.move(from, args.To, args.Amount.Uint64()); err != nil {
		return 0, err
	}

	tx := (&txFields{}).
		text("op", OpTransfer).
		nat("amt", args.Amount.Uint64()).
		account("from", from).
		account("to", args.To).
		optNat("created_at_time", args.CreatedAtTime).
		blob("memo", args.Memo)

	return l.commit(key, args.CreatedAtTime, now, tx), nil
}

// TransferFrom applies icrc2_transfer_from issued by caller as spender.
func (l *Ledger) TransferFrom(caller string, args models.TransferFromArgs) (uint64, error) {
	spender := models.Account{Owner: caller, Subaccount: args.SpenderSubaccount}
	for _, a := range []models.Account{spender, args.From, args.To} {
		if err := validateAccount(a); err != nil {
			return 0, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowNanos()
	if err := l.checkCommon(args.Fee, args.CreatedAtTime, now); err != nil {
		return 0, err
	}
	key, err := dedupKey("transfer_from", caller, args)
	if err != nil {
		return 0, err
	}
	if err := l.checkDuplicate(key, args.CreatedAtTime, now); err != nil {
		return 0, err
	}

	amount := args.Amount.Uint64()
	debit, ok := utils.AddChecked(amount, l.cfg.Fee)
	if !ok {
		return 0, l.reject(errGeneric(1, "amount overflow"))
	}

	ak := allowanceKey{owner: args.From.Key(), spender: spender.Key()}
	current := l.allowanceOf(args.From, spender, now)
	if current.amount < debit {
		return 0, l.reject(errInsufficientAllowance(current.amount))
	}

	if err := l.move(args.From, args.To, amount); err != nil {
		return 0, err
	}

	if remaining := current.amount - debit; remaining == 0 {
		delete(l.allowances, ak)
	} else {
		current.amount = remaining
		l.allowances[ak] = current
	}

	tx := (&txFields{}).
		text("op", OpTransfer).
		nat("amt", amount).
		account("from", args.From).
		account("to", args.To).
		account("spender", spender).
		optNat("created_at_time", args.CreatedAtTime).
		blob("memo", args.Memo)

	return l.commit(key, args.CreatedAtTime, now, tx), nil
}

// Blocks returns up to length blocks starting at start.
func (l *Ledger) Blocks(start, length uint64) models.GetBlocksResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := uint64(len(l.blocks))
	out := models.GetBlocksResult{LogLength: models.Nat(total), Blocks: []models.BlockWithID{}}
	if start >= total {
		return out
	}

	end := total
	if length < total-start {
		end = start + length
	}
	for i := start; i < end; i++ {
		out.Blocks = append(out.Blocks, models.BlockWithID{ID: models.Nat(i), Block: l.blocks[i]})
	}

	return out
}

// move debits amount plus the fee from `from` and credits amount to `to`.
// Callers hold l.mu.
func (l *Ledger) move(from, to models.Account, amount uint64) error {
	debit, ok := utils.AddChecked(amount, l.cfg.Fee)
	if !ok {
		return l.reject(errGeneric(1, "amount overflow"))
	}

	balance := l.balances[from.Key()]
	if balance < debit {
		return l.reject(errInsufficientFunds(balance))
	}

	credit := l.balances[to.Key()]
	if from.Key() != to.Key() && credit > math.MaxUint64-amount {
		return l.reject(errGeneric(1, "balance overflow"))
	}

	l.balances[from.Key()] = balance - debit
	l.balances[to.Key()] += amount
	return nil
}

func (l *Ledger) checkCommon(fee, createdAt *models.Nat, now uint64) error {
	if fee != nil && fee.Uint64() != l.cfg.Fee {
		return l.reject(errBadFee(l.cfg.Fee))
	}
	if createdAt == nil {
		return nil
	}

	ts := createdAt.Uint64()
	window := uint64(l.cfg.TxWindow.Nanoseconds()) + uint64(l.cfg.PermittedDrift.Nanoseconds())
	if now > window && ts < now-window {
		return l.reject(errTooOld())
	}
	if ts > now+uint64(l.cfg.PermittedDrift.Nanoseconds()) {
		return l.reject(errCreatedInFuture(now))
	}
	return nil
}

// checkDuplicate rejects a transaction whose dedup key was already committed
// within the window. Only transactions carrying created_at_time are
// deduplicated.
func (l *Ledger) checkDuplicate(key string, createdAt *models.Nat, now uint64) error {
	if createdAt == nil {
		return nil
	}

	prev, ok := l.dedup[key]
	if !ok {
		return nil
	}

	window := uint64(l.cfg.TxWindow.Nanoseconds()) + uint64(l.cfg.PermittedDrift.Nanoseconds())
	if now > window && prev.createdAt < now-window {
		delete(l.dedup, key)
		return nil
	}

	return l.reject(errDuplicate(prev.block))
}

func (l *Ledger) commit(key string, createdAt *models.Nat, now uint64, tx *txFields) uint64 {
	fee := l.cfg.Fee
	index := l.appendBlock(now, &fee, tx)
	if createdAt != nil {
		l.dedup[key] = dedupEntry{block: index, createdAt: createdAt.Uint64()}
	}
	return index
}

func (l *Ledger) appendBlock(now uint64, fee *uint64, tx *txFields) uint64 {
	block := encodeBlock(now, fee, l.lastHash, tx)

	encoded, _ := json.Marshal(block)
	sum := sha256.Sum256(encoded)
	l.lastHash = sum[:]

	l.blocks = append(l.blocks, block)
	if l.metrics != nil {
		l.metrics.Blocks.Set(float64(len(l.blocks)))
	}

	return uint64(len(l.blocks) - 1)
}

func (l *Ledger) allowanceOf(owner, spender models.Account, now uint64) allowanceEntry {
	ak := allowanceKey{owner: owner.Key(), spender: spender.Key()}
	entry, ok := l.allowances[ak]
	if !ok {
		return allowanceEntry{}
	}
	if entry.expiresAt != nil && *entry.expiresAt < now {
		delete(l.allowances, ak)
		return allowanceEntry{}
	}
	return entry
}

func (l *Ledger) reject(err *models.LedgerError) error {
	if l.metrics != nil {
		l.metrics.LedgerErr.WithLabelValues(string(err.Kind)).Inc()
	}
	return err
}

func (l *Ledger) nowNanos() uint64 {
	return uint64(l.now().UnixNano())
}

func validateAccount(a models.Account) error {
	if _, err := keys.DecodePrincipal(a.Owner); err != nil {
		return errGeneric(3, fmt.Sprintf("invalid principal %q", a.Owner))
	}
	if len(a.Subaccount) != 0 && len(a.Subaccount) != 32 {
		return errGeneric(3, "subaccount must be 32 bytes")
	}
	return nil
}

func dedupKey(op, caller string, args any) (string, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encode dedup key: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(op))
	h.Write([]byte{0})
	h.Write([]byte(caller))
	h.Write([]byte{0})
	h.Write(encoded)
	return hex.EncodeToString(h.Sum(nil)), nil
}
