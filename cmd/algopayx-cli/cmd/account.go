package cmd

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "show the account balances",
	RunE: func(cmd *cobra.Command, args []string) error {
		var balance map[string]any
		if err := call(cmd, http.MethodGet, "/balance", nil, &balance); err != nil {
			return err
		}

		return printJson(cmd, balance)
	},
}

var historyOpt struct {
	Type  string
	Query string
	Limit int
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "list transactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		if historyOpt.Type != "" {
			q.Set("type", historyOpt.Type)
		}

		if historyOpt.Query != "" {
			q.Set("q", historyOpt.Query)
		}

		q.Set("limit", strconv.Itoa(historyOpt.Limit))

		var txs []map[string]any
		if err := call(cmd, http.MethodGet, "/transactions?"+q.Encode(), nil, &txs); err != nil {
			return err
		}

		return printJson(cmd, txs)
	},
}

var quoteOpt struct {
	From   string
	To     string
	Amount string
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "quote a currency conversion",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("from", quoteOpt.From)
		q.Set("to", quoteOpt.To)
		q.Set("amount", quoteOpt.Amount)

		var quote map[string]any
		if err := call(cmd, http.MethodGet, "/convert?"+q.Encode(), nil, &quote); err != nil {
			return err
		}

		return printJson(cmd, quote)
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(quoteCmd)

	historyCmd.Flags().StringVar(&historyOpt.Type, "type", "", "transaction type (optional)")
	historyCmd.Flags().StringVar(&historyOpt.Query, "query", "", "search text (optional)")
	historyCmd.Flags().IntVar(&historyOpt.Limit, "limit", 20, "max records")

	quoteCmd.Flags().StringVar(&quoteOpt.From, "from", "USD", "source currency")
	quoteCmd.Flags().StringVar(&quoteOpt.To, "to", "ALGO", "target currency")
	quoteCmd.Flags().StringVar(&quoteOpt.Amount, "amount", "0", "amount")
}
