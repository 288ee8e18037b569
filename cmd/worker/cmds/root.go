package cmds

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/pandodao/algopayx/core"
	"github.com/spf13/cobra"
)

type Cmd struct {
	Wallets      core.WalletStore
	Transactions core.TransactionLog
	Ledger       core.Ledger
	Bridge       core.WalletBridge

	// Out defaults to stdout
	Out io.Writer `wire:"-"`
}

func (c *Cmd) Run(ctx context.Context, args []string) error {
	root := &cobra.Command{
		Use:          "algopayx-worker",
		Short:        "algopayx maintenance commands",
		SilenceUsage: true,
	}

	root.AddCommand(c.balanceCmd())
	root.AddCommand(c.exportHistoryCmd())
	root.AddCommand(c.exportWalletCmd())
	root.AddCommand(c.chainHistoryCmd())

	root.SetArgs(args)
	if c.Out != nil {
		root.SetOut(c.Out)
	} else {
		root.SetOut(os.Stdout)
	}

	return root.ExecuteContext(ctx)
}

func (c *Cmd) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "print the account balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := c.Ledger.Balance(cmd.Context())
			if err != nil {
				return err
			}

			return jsonPrint(cmd, balance)
		},
	}
}

func (c *Cmd) exportWalletCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-wallet",
		Short: "export the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := c.Wallets.Find(cmd.Context())
			if err != nil {
				return err
			}

			if wallet == nil {
				return errors.New("no wallet connected")
			}

			return jsonPrint(cmd, wallet)
		},
	}
}

func (c *Cmd) chainHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "chain-history",
		Short: "export the on-chain transactions of the connected wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wallet, err := c.Wallets.Find(ctx)
			if err != nil {
				return err
			}

			if wallet == nil || len(wallet.Accounts) == 0 {
				return errors.New("no wallet connected")
			}

			txs, err := c.Bridge.History(ctx, wallet.Accounts[0].Address, limit)
			if err != nil {
				return err
			}

			return jsonPrint(cmd, txs)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 100, "max transactions")
	return cmd
}

func jsonPrint(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
