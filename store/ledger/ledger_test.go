package ledger

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/property"
	"github.com/shopspring/decimal"
)

func newLedger(t *testing.T) (core.Ledger, core.PropertyStore) {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	properties := property.New(conn, db.SQLite)
	return New(properties, slog.New(slog.NewTextHandler(io.Discard, nil))), properties
}

func TestUpdate(t *testing.T) {
	newDecimal := func(s string) decimal.Decimal {
		return decimal.RequireFromString(s)
	}

	tests := []struct {
		name string
		leg  core.Leg
		want decimal.Decimal
	}{
		{
			name: "debit bank",
			leg:  core.Leg{Direction: core.Debit, Account: core.AccountBank, Amount: newDecimal("101")},
			want: newDecimal("25329.50"),
		},
		{
			name: "credit stocks",
			leg:  core.Leg{Direction: core.Credit, Account: core.AccountStocks, Amount: newDecimal("0.75")},
			want: newDecimal("12501"),
		},
		{
			name: "debit clamps at zero",
			leg:  core.Leg{Direction: core.Debit, Account: core.AccountAlgo, Amount: newDecimal("99999")},
			want: decimal.Zero,
		},
		{
			name: "debit exact balance",
			leg:  core.Leg{Direction: core.Debit, Account: core.AccountUSDC, Amount: newDecimal("5000")},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newLedger(t)
			got, err := l.Update(context.Background(), tt.leg)
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}

			if v := got.Of(tt.leg.Account); !v.Equal(tt.want) {
				t.Errorf("Update() %s = %s, want %s", tt.leg.Account, v, tt.want)
			}

			stored, _ := l.Balance(context.Background())
			if v := stored.Of(tt.leg.Account); !v.Equal(tt.want) {
				t.Errorf("Balance() %s = %s, want %s", tt.leg.Account, v, tt.want)
			}
		})
	}
}

func TestUpdateInvalidAccount(t *testing.T) {
	l, _ := newLedger(t)
	_, err := l.Update(context.Background(), core.Leg{Direction: core.Debit, Account: "savings", Amount: decimal.NewFromInt(1)})
	if err == nil {
		t.Fatal("Update() with unknown account should fail")
	}
}

func TestNeverNegative(t *testing.T) {
	l, _ := newLedger(t)
	ctx := context.Background()

	accounts := []core.Account{core.AccountBank, core.AccountAlgo, core.AccountUSDC, core.AccountStocks}
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		leg := core.Leg{
			Direction: core.Debit,
			Account:   accounts[r.Intn(len(accounts))],
			Amount:    decimal.NewFromInt(r.Int63n(20000)).Div(decimal.NewFromInt(100)),
		}

		if r.Intn(3) == 0 {
			leg.Direction = core.Credit
		}

		balance, err := l.Update(ctx, leg)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}

		for _, account := range accounts {
			if balance.Of(account).IsNegative() {
				t.Fatalf("step %d: %s balance negative: %s", i, account, balance.Of(account))
			}
		}
	}
}

func TestCorruptedSnapshot(t *testing.T) {
	l, properties := newLedger(t)
	ctx := context.Background()

	if err := properties.Set(ctx, store.KeyBalance, []int{1, 2, 3}); err != nil {
		t.Fatalf("properties.Set() error = %v", err)
	}

	balance, err := l.Balance(ctx)
	if err != nil {
		t.Fatalf("Balance() error = %v", err)
	}

	if want := core.DefaultBalance(); !balance.Bank.Equal(want.Bank) {
		t.Errorf("Balance() bank = %s, want default %s", balance.Bank, want.Bank)
	}
}
