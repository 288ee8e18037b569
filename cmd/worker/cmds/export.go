package cmds

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/generic"
	"github.com/spf13/cobra"
)

// historyRow is the flat export form of a transaction record.
type historyRow struct {
	Reference   string `json:"reference"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Recipient   string `json:"recipient,omitempty"`
	Amount      string `json:"amount"`
	Fee         string `json:"fee"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

var historyHeader = []string{"reference", "date", "time", "type", "description", "recipient", "amount", "fee", "currency", "status"}

func rowFromTransaction(tx *core.Transaction) historyRow {
	return historyRow{
		Reference:   tx.Reference,
		Date:        tx.Date,
		Time:        tx.Time,
		Type:        string(tx.Type),
		Description: tx.Description,
		Recipient:   tx.Recipient,
		Amount:      tx.Amount.StringFixed(2),
		Fee:         tx.Fee.StringFixed(2),
		Currency:    tx.Currency,
		Status:      string(tx.Status),
	}
}

func (r historyRow) record() []string {
	return []string{r.Reference, r.Date, r.Time, r.Type, r.Description, r.Recipient, r.Amount, r.Fee, r.Currency, r.Status}
}

func (c *Cmd) exportHistoryCmd() *cobra.Command {
	var (
		format string
		filter core.TransactionFilter
		typ    string
	)

	cmd := &cobra.Command{
		Use:   "export-history",
		Short: "export the transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter.Type = core.TransactionType(typ)
			if filter.Type != "" && !filter.Type.Valid() {
				return fmt.Errorf("unknown transaction type %q", typ)
			}

			txs, err := c.Transactions.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			rows := generic.MapSlice(txs, rowFromTransaction)

			switch strings.ToLower(format) {
			case "json":
				return jsonPrint(cmd, rows)
			case "csv":
				w := csv.NewWriter(cmd.OutOrStdout())
				if err := w.Write(historyHeader); err != nil {
					return err
				}

				for _, r := range rows {
					if err := w.Write(r.record()); err != nil {
						return err
					}
				}

				w.Flush()
				return w.Error()
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "output format, csv or json")
	cmd.Flags().StringVar(&typ, "type", "", "only export this transaction type")
	cmd.Flags().StringVar(&filter.Query, "query", "", "only export records matching this text")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "max records, 0 for all")
	return cmd
}
