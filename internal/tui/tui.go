// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal dashboard: an unlock
// prompt and a wallet overview with the session countdown, lock and copy
// actions.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// TUI runs the Bubble Tea program over the client services.
type TUI struct {
	vault     service.WalletVault
	tokens    service.TokenService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates the TUI. services must carry a vault; Tokens may be nil.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		vault:     services.Vault,
		tokens:    services.Tokens,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is cancelled. Each value received
// on locks moves the UI to the unlock page.
func (t *TUI) Run(ctx context.Context, locks <-chan struct{}) error {
	status, err := t.vault.Status(ctx)
	if err != nil {
		return fmt.Errorf("read wallet status: %w", err)
	}
	if !status.HasWallet {
		return service.ErrWalletNotFound
	}

	start := pageUnlock
	if status.Unlocked {
		start = pageDashboard
	}

	pages := map[string]tea.Model{
		pageUnlock:    NewUnlockModel(ctx, t.vault),
		pageDashboard: NewDashboardModel(ctx, t.vault, t.tokens),
	}
	root := NewRootModel(pages, start, t.buildInfo, locks)

	t.logger.Debug().Str("func", "TUI.Run").Str("page", start).Msg("starting tui")

	if _, err = tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
