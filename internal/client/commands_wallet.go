// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

func newCreateCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a wallet from a fresh 12-word seed phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.readNewPassword()
			if err != nil {
				return err
			}

			mnemonic, record, err := a.services.Vault.Create(cmd.Context(), password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Write down the seed phrase and keep it offline. It is not shown again:")
			fmt.Fprintf(out, "\n  %s\n\n", mnemonic)
			printIdentity(out, record.Identity())
			return nil
		},
	}
}

func newImportCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import a wallet from a BIP-39 seed phrase",
		Long:  "Import a wallet from a BIP-39 seed phrase. The phrase is read from the terminal, never from arguments.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			phrase, err := a.prompt.ReadPassword("Seed phrase: ")
			if err != nil {
				return err
			}
			password, err := a.readNewPassword()
			if err != nil {
				return err
			}

			record, err := a.services.Vault.Import(cmd.Context(), strings.TrimSpace(phrase), password)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Wallet imported.")
			printIdentity(out, record.Identity())
			return nil
		},
	}
}

func newUnlockCommand(a *App) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Open an unlock session so later commands need no password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.prompt.ReadPassword("Password: ")
			if err != nil {
				return err
			}

			lock, err := a.services.Vault.Unlock(cmd.Context(), password, ttl)
			if err != nil {
				return err
			}

			expiresAt := lock.ExpiresAtTime()
			fmt.Fprintf(cmd.OutOrStdout(), "Wallet unlocked until %s (%s)\n",
				expiresAt.Format(time.DateTime), time.Until(expiresAt).Round(time.Second))
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Session lifetime (default from config)")

	return cmd
}

func newLockCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Close the unlock session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.Vault.Lock(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wallet locked.")
			return nil
		},
	}
}

func newStatusCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored wallet and the session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.services.Vault.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !status.HasWallet {
				fmt.Fprintln(out, "Wallet:     none")
				return nil
			}

			printIdentity(out, status.Identity)
			if status.Unlocked {
				fmt.Fprintf(out, "Session:    unlocked until %s\n", status.ExpiresAt.Format(time.DateTime))
			} else {
				fmt.Fprintln(out, "Session:    locked")
			}
			return nil
		},
	}
}

func newLogoutCommand(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Remove the wallet from this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				answer, err := a.prompt.ReadLine("This deletes the encrypted wallet. Type 'yes' to continue: ")
				if err != nil {
					return err
				}
				if strings.TrimSpace(answer) != "yes" {
					return errAborted
				}
			}

			record, err := a.services.Vault.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !record.HasWallet() {
				return service.ErrWalletNotFound
			}
			if _, err = a.services.Vault.Logout(cmd.Context(), record); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Wallet removed.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Do not ask for confirmation")

	return cmd
}

func printIdentity(out io.Writer, identity models.PublicIdentity) {
	fmt.Fprintf(out, "Principal:  %s\n", identity.PrincipalID)
	fmt.Fprintf(out, "Account ID: %s\n", identity.AccountID)
}
