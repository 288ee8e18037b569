package cmd

import (
	"net/http"

	"github.com/spf13/cobra"
)

var payOpt struct {
	Method    string `json:"method"`
	Source    string `json:"source"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Note      string `json:"note,omitempty"`
	pin       string
}

// payCmd stages a payment and, when --pin is given, authorizes it at once.
var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "send a payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		var staged map[string]any
		if err := call(cmd, http.MethodPost, "/actions/payment", payOpt, &staged); err != nil {
			return err
		}

		if payOpt.pin == "" {
			cmd.Println("payment staged, authorize it with the pin command")
			return printJson(cmd, staged["prompt"])
		}

		return authorize(cmd, payOpt.pin)
	},
}

var pinCmd = &cobra.Command{
	Use:   "pin <digits>",
	Short: "authorize the staged action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return authorize(cmd, args[0])
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "discard the staged action",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status map[string]any
		if err := call(cmd, http.MethodPost, "/gate/cancel", nil, &status); err != nil {
			return err
		}

		return printJson(cmd, status)
	},
}

func authorize(cmd *cobra.Command, pin string) error {
	body := map[string]string{"digits": pin}
	if err := call(cmd, http.MethodPost, "/gate/input", body, nil); err != nil {
		return err
	}

	var receipt map[string]any
	if err := call(cmd, http.MethodPost, "/gate/submit", nil, &receipt); err != nil {
		return err
	}

	return printJson(cmd, receipt)
}

func init() {
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(cancelCmd)

	payCmd.Flags().StringVar(&payOpt.Method, "method", "bank", "bank, mobile or qr")
	payCmd.Flags().StringVar(&payOpt.Source, "source", "bank", "bank, algo or usdc")
	payCmd.Flags().StringVar(&payOpt.Recipient, "recipient", "", "recipient")
	payCmd.Flags().StringVar(&payOpt.Amount, "amount", "0", "amount")
	payCmd.Flags().StringVar(&payOpt.Note, "note", "", "note (optional)")
	payCmd.Flags().StringVar(&payOpt.pin, "pin", "", "authorize immediately with this pin (optional)")
}
