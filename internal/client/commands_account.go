// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const defaultQRSize = 256

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func newAddressCommand(a *App) *cobra.Command {
	var copyAccount bool

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the principal and the account id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := a.identity(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printIdentity(out, identity)

			if copyAccount {
				if err = writeClipboard(identity.AccountID); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(out, "Account ID copied to clipboard.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyAccount, "copy", false, "Copy the account id to the clipboard")

	return cmd
}

func newReceiveCommand(a *App) *cobra.Command {
	var path string
	var size int

	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Write a QR code of the principal to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := a.identity(cmd.Context())
			if err != nil {
				return err
			}

			if err = qrcode.WriteFile(identity.PrincipalID, qrcode.Medium, size, path); err != nil {
				return fmt.Errorf("write qr code: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Principal:  %s\n", identity.PrincipalID)
			fmt.Fprintf(out, "QR code written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "out", "receive.png", "PNG output path")
	cmd.Flags().IntVar(&size, "size", defaultQRSize, "Image size in pixels")

	return cmd
}

func (a *App) identity(ctx context.Context) (models.PublicIdentity, error) {
	status, err := a.services.Vault.Status(ctx)
	if err != nil {
		return models.PublicIdentity{}, err
	}
	if !status.HasWallet {
		return models.PublicIdentity{}, service.ErrWalletNotFound
	}
	return status.Identity, nil
}
