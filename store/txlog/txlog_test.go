package txlog

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store/db"
	"github.com/shopspring/decimal"
)

func newLog(t *testing.T) *logStore {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "txlog.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	s := New(conn, db.SQLite).(*logStore)
	fixed := time.Date(2024, 3, 9, 17, 45, 12, 0, time.Local)
	s.now = func() time.Time { return fixed }
	return s
}

func TestSeeded(t *testing.T) {
	s := newLog(t)

	transactions, err := s.List(context.Background(), core.TransactionFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	var ids []string
	for _, tx := range transactions {
		ids = append(ids, tx.ID)
	}

	want := []string{"initial-1", "initial-2", "initial-3", "initial-4"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("List() ids = %v, want %v", ids, want)
	}

	if got := transactions[0].Fee; !got.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("seeded fee = %s, want 2.5", got)
	}
}

func TestAppend(t *testing.T) {
	s := newLog(t)
	ctx := context.Background()

	types := []core.TransactionType{
		core.TransactionTypePayment,
		core.TransactionTypeRecharge,
		core.TransactionTypePayment,
		core.TransactionTypeConvert,
	}

	seenIDs := map[string]bool{}
	seenRefs := map[string]bool{}

	for i, typ := range types {
		tx, err := s.Append(ctx, &core.Transaction{
			Type:        typ,
			Amount:      decimal.NewFromInt(int64(100 + i)),
			Currency:    "USD",
			Description: "append test",
			Fee:         decimal.NewFromInt(1),
			Details:     []byte(`{"n":1}`),
		})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}

		if seenIDs[tx.ID] || seenRefs[tx.Reference] {
			t.Fatalf("Append() duplicate identity %s / %s", tx.ID, tx.Reference)
		}

		seenIDs[tx.ID] = true
		seenRefs[tx.Reference] = true

		if !strings.HasPrefix(tx.ID, "txn-") {
			t.Errorf("Append() id = %s, want txn- prefix", tx.ID)
		}

		if prefix := typ.ReferencePrefix() + "-"; !strings.HasPrefix(tx.Reference, prefix) {
			t.Errorf("Append() reference = %s, want %s prefix", tx.Reference, prefix)
		}

		if tx.Date != "2024-03-09" || tx.Time != "17:45" {
			t.Errorf("Append() date/time = %s %s, want 2024-03-09 17:45", tx.Date, tx.Time)
		}

		if tx.Status != core.TransactionStatusCompleted {
			t.Errorf("Append() status = %s, want completed", tx.Status)
		}

		latest, err := s.List(ctx, core.TransactionFilter{Limit: 1})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}

		if latest[0].ID != tx.ID {
			t.Errorf("List() first = %s, want newest %s", latest[0].ID, tx.ID)
		}
	}

	payments, err := s.List(ctx, core.TransactionFilter{Type: core.TransactionTypePayment})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// two appended plus the seeded payment
	if len(payments) != 3 {
		t.Errorf("List(payment) = %d records, want 3", len(payments))
	}

	if string(payments[0].Details) != `{"n":1}` {
		t.Errorf("List() details = %s", payments[0].Details)
	}
}

func TestAppendInvalidType(t *testing.T) {
	s := newLog(t)
	if _, err := s.Append(context.Background(), &core.Transaction{Type: "refund"}); err == nil {
		t.Fatal("Append() with unknown type should fail")
	}
}

func TestSearchAndSummary(t *testing.T) {
	s := newLog(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter core.TransactionFilter
		want   int
	}{
		{name: "description", filter: core.TransactionFilter{Query: "airtel"}, want: 1},
		{name: "reference", filter: core.TransactionFilter{Query: "trd-2024"}, want: 1},
		{name: "recipient", filter: core.TransactionFilter{Query: "JOHN.DOE"}, want: 1},
		{name: "type and query", filter: core.TransactionFilter{Type: core.TransactionTypeTrade, Query: "airtel"}, want: 0},
		{name: "limit", filter: core.TransactionFilter{Limit: 2}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}

			if len(got) != tt.want {
				t.Errorf("List() = %d records, want %d", len(got), tt.want)
			}
		})
	}

	summary, err := s.Summary(ctx, core.TransactionFilter{Limit: 1})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.Count != 4 {
		t.Errorf("Summary() count = %d, want 4", summary.Count)
	}

	if want := decimal.RequireFromString("1775"); !summary.Amount.Equal(want) {
		t.Errorf("Summary() amount = %s, want %s", summary.Amount, want)
	}

	if want := decimal.RequireFromString("10"); !summary.Fees.Equal(want) {
		t.Errorf("Summary() fees = %s, want %s", summary.Fees, want)
	}
}
