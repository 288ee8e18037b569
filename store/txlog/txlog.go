package txlog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store/db"
	"github.com/shopspring/decimal"
	"github.com/tsenart/nap"
)

func New(conn *nap.DB, dialect db.Dialect) core.TransactionLog {
	return &logStore{
		db:  conn,
		sb:  dialect.Builder(),
		now: time.Now,
	}
}

type logStore struct {
	db  *nap.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

var stamps stamper

// stamper hands out strictly increasing millisecond stamps.
type stamper struct {
	mux  sync.Mutex
	last int64
}

func (s *stamper) next(now time.Time) int64 {
	s.mux.Lock()
	defer s.mux.Unlock()

	ms := now.UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}

	s.last = ms
	return ms
}

// Stamp assigns identity, reference, date and time to t.
func Stamp(t *core.Transaction, now time.Time) {
	ms := stamps.next(now)

	t.ID = fmt.Sprintf("txn-%d", ms)
	t.Reference = fmt.Sprintf("%s-%d", t.Type.ReferencePrefix(), ms)
	t.CreatedAt = now
	t.Date = now.Format("2006-01-02")
	t.Time = now.Format("15:04")

	if t.Status == "" {
		t.Status = core.TransactionStatusCompleted
	}
}

// Insert stores an already stamped transaction on r.
func Insert(ctx context.Context, r sq.BaseRunner, sb sq.StatementBuilderType, t *core.Transaction) error {
	var details any
	if len(t.Details) > 0 {
		details = string(t.Details)
	}

	_, err := sb.Insert("transactions").
		Columns("id", "created_at", "type", "status", "amount", "currency", "description", "recipient", "tx_date", "tx_time", "fee", "reference", "details").
		Values(t.ID, t.CreatedAt, t.Type, t.Status, t.Amount, t.Currency, t.Description, t.Recipient, t.Date, t.Time, t.Fee, t.Reference, details).
		RunWith(r).
		ExecContext(ctx)
	return err
}

func (s *logStore) Append(ctx context.Context, draft *core.Transaction) (*core.Transaction, error) {
	if !draft.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", core.ErrInvalidInput, draft.Type)
	}

	t := *draft
	Stamp(&t, s.now())

	if err := Insert(ctx, s.db, s.sb, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *logStore) List(ctx context.Context, filter core.TransactionFilter) ([]*core.Transaction, error) {
	b := s.sb.Select(scanColumns...).
		From("transactions").
		OrderBy("seq DESC")

	if filter.Type != "" {
		b = b.Where(sq.Eq{"type": filter.Type})
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		b = b.Where(sq.Or{
			sq.Like{"LOWER(description)": pattern},
			sq.Like{"LOWER(reference)": pattern},
			sq.Like{"LOWER(recipient)": pattern},
		})
	}

	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var transactions []*core.Transaction
	for rows.Next() {
		var t core.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}

		transactions = append(transactions, &t)
	}

	return transactions, rows.Err()
}

func (s *logStore) Summary(ctx context.Context, filter core.TransactionFilter) (*core.TransactionSummary, error) {
	filter.Limit = 0
	transactions, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &core.TransactionSummary{
		Amount: decimal.Zero,
		Fees:   decimal.Zero,
	}

	for _, t := range transactions {
		if t.Status != core.TransactionStatusCompleted {
			continue
		}

		summary.Count++
		summary.Amount = summary.Amount.Add(t.Amount)
		summary.Fees = summary.Fees.Add(t.Fee)
	}

	return summary, nil
}
