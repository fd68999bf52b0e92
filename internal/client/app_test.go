// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	handlerhttp "github.com/peridotvault/peridot-desktop-sub002/internal/handler/http"
	"github.com/peridotvault/peridot-desktop-sub002/internal/keys"
	"github.com/peridotvault/peridot-desktop-sub002/internal/ledger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const (
	ownerSeed      = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	ownerPrincipal = "tgzar-4lpln-fq34h-6hxo4-wlm3x-6g3or-6hxvr-d6jbw-ooh2b-lzsw4-aqe"
	shop           = "rrkah-fqaaa-aaaaa-aaaaq-cai"
	treasury       = "ryjl3-tyaaa-aaaaa-aaaba-cai"

	testPassword = "correct horse battery staple"
	testFee      = 10_000
	unit         = 100_000_000
)

// scriptedPrompter answers prompts from a fixed list.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (p *scriptedPrompter) next(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) ReadPassword(prompt string) (string, error) { return p.next(prompt) }
func (p *scriptedPrompter) ReadLine(prompt string) (string, error)     { return p.next(prompt) }

type harness struct {
	flags  []string
	ledger *ledger.Ledger
	dir    string
}

type result struct {
	stdout string
	stderr string
	err    error
}

// newHarness prepares a file-backed wallet store and, with a ledger, a
// simulator the CLI talks to.
func newHarness(t *testing.T, withLedger bool) *harness {
	t.Helper()
	t.Setenv("APP_LOCK_SECRET", "client-test-lock-secret")
	t.Setenv("CONFIG", "")

	dir := t.TempDir()
	h := &harness{
		dir:   dir,
		flags: []string{"--storage", "file", "--storage-file", filepath.Join(dir, "wallet.json")},
	}

	if withLedger {
		h.ledger = ledger.New(ledger.Config{Name: "Peridot Token", Symbol: "PER", Decimals: 8, Fee: testFee})
		_, err := h.ledger.Mint(models.Account{Owner: ownerPrincipal}, 100*unit)
		require.NoError(t, err)

		serverCfg := &config.ServerConfig{Simulator: config.Simulator{Spender: shop, Treasury: treasury}}
		srv := httptest.NewServer(handlerhttp.NewHandler(h.ledger, serverCfg, nil, nil, logger.Nop()).Init())
		t.Cleanup(srv.Close)

		h.flags = append(h.flags, "--gateway", srv.URL, "--purchase-address", srv.URL)
	}

	return h
}

func (h *harness) run(answers []string, args ...string) result {
	var stdout, stderr bytes.Buffer
	a := NewApp(models.NewAppBuildInfo("test", "", ""), logger.Nop(),
		WithPrompter(&scriptedPrompter{answers: answers}),
		WithOutput(&stdout, &stderr),
	)

	err := a.Run(context.Background(), append(args, h.flags...))
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func (h *harness) importOwner(t *testing.T) {
	t.Helper()
	res := h.run([]string{ownerSeed, testPassword, testPassword}, "import")
	require.NoError(t, res.err, res.stderr)
	require.Contains(t, res.stdout, ownerPrincipal)
}

func TestApp_CreateUnlockLock(t *testing.T) {
	h := newHarness(t, false)

	res := h.run([]string{testPassword, testPassword}, "new")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Principal:")
	assert.Contains(t, res.stdout, "seed phrase")

	res = h.run(nil, "status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Session:    locked")

	res = h.run([]string{testPassword}, "unlock", "--ttl", "10m")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Wallet unlocked until")

	res = h.run(nil, "status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Session:    unlocked until")

	res = h.run(nil, "lock")
	require.NoError(t, res.err)

	res = h.run(nil, "status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Session:    locked")
}

func TestApp_PasswordErrors(t *testing.T) {
	h := newHarness(t, false)

	res := h.run([]string{testPassword, "something else"}, "new")
	assert.ErrorIs(t, res.err, errPasswordMismatch)

	res = h.run([]string{""}, "new")
	assert.ErrorIs(t, res.err, service.ErrPasswordRequired)
	assert.Contains(t, res.stderr, app.MsgPasswordRequired)

	h.importOwner(t)

	res = h.run([]string{"wrong password"}, "unlock")
	assert.ErrorIs(t, res.err, service.ErrInvalidPassword)
	assert.Contains(t, res.stderr, app.MsgIncorrectPassword)
}

func TestApp_ImportRejectsInvalidSeed(t *testing.T) {
	h := newHarness(t, false)

	res := h.run([]string{"abandon abandon abandon", testPassword, testPassword}, "import")

	assert.ErrorIs(t, res.err, keys.ErrInvalidSeed)
	assert.Contains(t, res.stderr, app.MsgInvalidSeed)
}

func TestApp_AddressAndReceive(t *testing.T) {
	h := newHarness(t, false)

	res := h.run(nil, "address")
	assert.ErrorIs(t, res.err, service.ErrWalletNotFound)

	h.importOwner(t)

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	res = h.run(nil, "address", "--copy")
	require.NoError(t, res.err, res.stderr)
	accountID, err := keys.DeriveAccountID(ownerPrincipal)
	require.NoError(t, err)
	assert.Equal(t, accountID, copied)
	assert.Contains(t, res.stdout, accountID)

	png := filepath.Join(h.dir, "receive.png")
	res = h.run(nil, "receive", "--out", png, "--size", "128")
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestApp_LedgerNotConfigured(t *testing.T) {
	h := newHarness(t, false)
	h.importOwner(t)

	res := h.run(nil, "balance")

	assert.ErrorIs(t, res.err, service.ErrLedgerNotConfigured)
	assert.Contains(t, res.stderr, app.MsgNotConfigured)
}

func TestApp_BalanceSendHistory(t *testing.T) {
	h := newHarness(t, true)
	h.importOwner(t)

	res := h.run(nil, "balance")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Balance: 100 PER")

	// locked wallet: the password is asked once
	res = h.run([]string{testPassword}, "send", shop, "1.5")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "in block 1")
	assert.Equal(t, uint64(150_000_000), h.ledger.BalanceOf(models.Account{Owner: shop}))

	res = h.run(nil, "history", "--mine")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "xfer")
	assert.Contains(t, res.stdout, "2 block(s) shown, log length 2")
}

func TestApp_SendUsesOpenSession(t *testing.T) {
	h := newHarness(t, true)
	h.importOwner(t)

	res := h.run([]string{testPassword}, "unlock")
	require.NoError(t, res.err, res.stderr)

	// no answers queued: any prompt would fail
	res = h.run(nil, "send", shop, "1")
	require.NoError(t, res.err, res.stderr)
}

func TestApp_Pay(t *testing.T) {
	h := newHarness(t, true)
	h.importOwner(t)

	res := h.run([]string{testPassword}, "pay", "item-1", "2", "--spender", shop)
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Purchased item-1")
	assert.Contains(t, res.stdout, "Amount:      200000000")

	assert.Equal(t, uint64(2*unit), h.ledger.BalanceOf(models.Account{Owner: treasury}))
	assert.Zero(t, uint64(h.ledger.Allowance(models.Account{Owner: ownerPrincipal}, models.Account{Owner: shop}).Allowance))
}

func TestApp_PayWithoutSpender(t *testing.T) {
	h := newHarness(t, true)
	h.importOwner(t)

	res := h.run(nil, "pay", "item-1", "2")

	assert.ErrorIs(t, res.err, service.ErrSpenderNotConfigured)
}

func TestApp_Logout(t *testing.T) {
	h := newHarness(t, false)
	h.importOwner(t)

	res := h.run([]string{"no"}, "logout")
	assert.ErrorIs(t, res.err, errAborted)

	res = h.run(nil, "logout", "--yes")
	require.NoError(t, res.err, res.stderr)

	res = h.run(nil, "status")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Wallet:     none")
}

func TestApp_InvalidConfig(t *testing.T) {
	h := newHarness(t, false)
	t.Setenv("APP_LOCK_SECRET", "")

	res := h.run(nil, "status")

	assert.ErrorIs(t, res.err, config.ErrInvalidAppConfigs)
}
