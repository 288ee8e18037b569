package cmds

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/core/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestExportHistory(t *testing.T) {
	txs := []*core.Transaction{
		{
			Type:        core.TransactionTypePayment,
			Status:      core.TransactionStatusCompleted,
			Amount:      decimal.NewFromInt(100),
			Fee:         decimal.NewFromInt(1),
			Currency:    "USD",
			Description: "Payment via BANK",
			Recipient:   "bob@example.com",
			Date:        "2024-01-16",
			Time:        "10:00",
			Reference:   "PAY-1705399200000",
		},
	}

	tests := []struct {
		name   string
		args   []string
		filter core.TransactionFilter
		want   string
	}{
		{
			name:   "csv",
			args:   []string{"export-history", "--type", "payment"},
			filter: core.TransactionFilter{Type: core.TransactionTypePayment},
			want: "reference,date,time,type,description,recipient,amount,fee,currency,status\n" +
				"PAY-1705399200000,2024-01-16,10:00,payment,Payment via BANK,bob@example.com,100.00,1.00,USD,completed\n",
		},
		{
			name:   "json",
			args:   []string{"export-history", "--format", "json", "--query", "bob", "--limit", "5"},
			filter: core.TransactionFilter{Query: "bob", Limit: 5},
			want: `[
  {
    "reference": "PAY-1705399200000",
    "date": "2024-01-16",
    "time": "10:00",
    "type": "payment",
    "description": "Payment via BANK",
    "recipient": "bob@example.com",
    "amount": "100.00",
    "fee": "1.00",
    "currency": "USD",
    "status": "completed"
  }
]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockTransactionLog(ctrl)
			log.EXPECT().List(gomock.Any(), tt.filter).Return(txs, nil)

			var out bytes.Buffer
			c := &Cmd{Transactions: log, Out: &out}
			if err := c.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExportHistoryRejectsUnknownType(t *testing.T) {
	c := &Cmd{Out: &bytes.Buffer{}}
	err := c.Run(context.Background(), []string{"export-history", "--type", "refund"})
	if err == nil || !strings.Contains(err.Error(), "refund") {
		t.Errorf("Run() error = %v, want unknown type error", err)
	}
}

func TestExportWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	wallets := mocks.NewMockWalletStore(ctrl)

	wallets.EXPECT().Find(gomock.Any()).Return(nil, nil)
	c := &Cmd{Wallets: wallets, Out: &bytes.Buffer{}}
	if err := c.Run(context.Background(), []string{"export-wallet"}); err == nil {
		t.Error("Run() without a wallet succeeded")
	}

	wallets.EXPECT().Find(gomock.Any()).Return(&core.Wallet{
		Kind:     core.WalletPera,
		Accounts: []core.WalletAccount{{Address: "ADDR"}},
		Session:  "secret-session",
	}, nil)

	var out bytes.Buffer
	c.Out = &out
	if err := c.Run(context.Background(), []string{"export-wallet"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if strings.Contains(out.String(), "secret-session") {
		t.Error("export leaked the signer session")
	}

	if !strings.Contains(out.String(), `"address": "ADDR"`) {
		t.Errorf("export = %s, want the account address", out.String())
	}
}
