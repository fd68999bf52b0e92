// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const defaultHistoryLength = 20

func newBalanceCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the wallet balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			amount, err := a.services.Tokens.Balance(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", amount)
			return nil
		},
	}
}

func newSendCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send <principal> <amount>",
		Short: "Transfer tokens to a principal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := service.ParseAccount(args[0])
			if err != nil {
				return err
			}

			var index uint64
			err = a.withPassword(func(password string) error {
				var transferErr error
				index, transferErr = a.services.Tokens.Transfer(cmd.Context(), to, args[1], password)
				return transferErr
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sent %s to %s in block %d\n", args[1], to.Owner, index)
			return nil
		},
	}
}

func newPayCommand(a *App) *cobra.Command {
	var spender string

	cmd := &cobra.Command{
		Use:   "pay <item-id> <amount>",
		Short: "Approve the spender for amount plus fee and buy the item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.PaymentRequest{
				Spender: models.Account{Owner: spender},
				ItemID:  args[0],
				Amount:  args[1],
			}

			var receipt models.PaymentReceipt
			err := a.withPassword(func(password string) error {
				req.Password = password
				var payErr error
				receipt, payErr = a.services.Payments.Pay(cmd.Context(), req)
				return payErr
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Purchased %s\n", receipt.ItemID)
			fmt.Fprintf(out, "Amount:      %d\n", receipt.Amount)
			fmt.Fprintf(out, "Fee:         %d\n", receipt.Fee)
			fmt.Fprintf(out, "Block:       %d\n", receipt.BlockIndex)
			fmt.Fprintf(out, "Negotiation: %s\n", receipt.NegotiationID)
			return nil
		},
	}
	cmd.Flags().StringVar(&spender, "spender", "", "Spender principal (default from config)")

	return cmd
}

func newHistoryCommand(a *App) *cobra.Command {
	var start, length uint64
	var mine bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List ledger blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.services.Tokens.History(cmd.Context(), start, length, mine)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tOP\tAMOUNT\tFROM\tTO\tSPENDER")
			for _, b := range page.Blocks {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n", b.ID, b.Op, b.Amount, dash(b.From), dash(b.To), dash(b.Spender))
			}
			if err = tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "%d block(s) shown, log length %d\n", len(page.Blocks), page.LogLength)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&start, "start", 0, "First block index")
	cmd.Flags().Uint64Var(&length, "length", defaultHistoryLength, "Number of blocks")
	cmd.Flags().BoolVar(&mine, "mine", false, "Only blocks touching this wallet")

	return cmd
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
