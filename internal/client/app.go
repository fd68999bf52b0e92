// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/peridotvault/peridot-desktop-sub002/internal/adapter"
	"github.com/peridotvault/peridot-desktop-sub002/internal/config"
	"github.com/peridotvault/peridot-desktop-sub002/internal/logger"
	"github.com/peridotvault/peridot-desktop-sub002/internal/metrics"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/internal/store"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// App is the wallet CLI. Configuration is loaded and the services are built
// before every command except help.
type App struct {
	root      *cobra.Command
	flags     func() *config.StructuredConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	prompt Prompter
	stdout io.Writer
	stderr io.Writer

	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
}

// Option customises an App.
type Option func(*App)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p Prompter) Option {
	return func(a *App) { a.prompt = p }
}

// WithOutput redirects command output and error messages.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// NewApp builds the command tree.
func NewApp(buildInfo models.AppBuildInfo, log *logger.Logger, opts ...Option) *App {
	a := &App{
		buildInfo: buildInfo,
		logger:    log,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.prompt == nil {
		a.prompt = NewTerminalPrompter(os.Stdin, a.stderr)
	}

	fs := flag.NewFlagSet("peridot", flag.ContinueOnError)
	a.flags = config.RegisterFlags(fs)

	root := &cobra.Command{
		Use:               "peridot",
		Short:             "PeridotVault wallet",
		Version:           buildInfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	root.PersistentFlags().AddGoFlagSet(fs)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(
		newCreateCommand(a),
		newImportCommand(a),
		newUnlockCommand(a),
		newLockCommand(a),
		newStatusCommand(a),
		newLogoutCommand(a),
		newAddressCommand(a),
		newReceiveCommand(a),
		newBalanceCommand(a),
		newSendCommand(a),
		newPayCommand(a),
		newHistoryCommand(a),
		newTUICommand(a),
	)
	a.root = root

	return a
}

// Run executes the command selected by args. Errors are printed in their
// user-facing form and returned.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.close()

	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)
	if err != nil {
		a.logger.Error().Err(err).Str("func", "App.Run").Msg("command failed")
		fmt.Fprintln(a.stderr, "Error:", service.UserMessage(err))
	}
	return err
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.GetClientConfig(a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// an unset address leaves the adapter nil and the dependent commands
	// report "not configured"
	var ledger adapter.LedgerAdapter
	if cfg.Adapter.Address != "" {
		if ledger, err = adapter.NewHTTPLedgerAdapter(cfg.Adapter, cfg.App.HashKey, a.logger); err != nil {
			return fmt.Errorf("create ledger adapter: %w", err)
		}
	}
	var spender adapter.Spender
	if cfg.Adapter.PurchaseAddress != "" {
		if spender, err = adapter.NewHTTPSpender(cfg.Adapter, cfg.App.HashKey, a.logger); err != nil {
			return fmt.Errorf("create purchase adapter: %w", err)
		}
	}

	storages, err := store.NewClientStorages(cmd.Context(), cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	services, err := service.NewClientServices(storages, ledger, spender, cfg, metrics.NewRegistry(), a.logger)
	if err != nil {
		return errors.Join(fmt.Errorf("create services: %w", err), storages.Close())
	}

	a.cfg = cfg
	a.storages = storages
	a.services = services
	return nil
}

func (a *App) close() {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("closing storages")
	}
	a.storages = nil
}

// withPassword calls fn without a password first so an open session is
// used, and prompts only when the wallet turns out to be locked.
func (a *App) withPassword(fn func(password string) error) error {
	err := fn("")
	if !errors.Is(err, service.ErrPasswordRequired) {
		return err
	}

	password, err := a.prompt.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return service.ErrPasswordRequired
	}
	return fn(password)
}

func (a *App) readNewPassword() (string, error) {
	password, err := a.prompt.ReadPassword("New password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", service.ErrPasswordRequired
	}

	confirm, err := a.prompt.ReadPassword("Repeat password: ")
	if err != nil {
		return "", err
	}
	if confirm != password {
		return "", errPasswordMismatch
	}
	return password, nil
}
