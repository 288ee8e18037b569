package ledger

import (
	"context"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/property"
	"github.com/pandodao/algopayx/store/txlog"
	"github.com/tsenart/nap"
)

// NewBook returns a book committing the balance leg, the log record and the
// optional user update in one database transaction.
func NewBook(conn *nap.DB, dialect db.Dialect, logger *slog.Logger) core.Book {
	return &book{
		db:     conn,
		sb:     dialect.Builder(),
		logger: logger.With("store", "book"),
		now:    time.Now,
	}
}

type book struct {
	db     *nap.DB
	sb     sq.StatementBuilderType
	logger *slog.Logger
	now    func() time.Time
}

func (b *book) Commit(ctx context.Context, entry core.Entry) (*core.Transaction, *core.Balance, error) {
	if entry.Draft == nil {
		return nil, nil, core.ErrInvalidInput
	}

	mux.Lock()
	defer mux.Unlock()

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	defer tx.Rollback()

	properties := property.WithRunner(tx, b.sb)

	balance, err := Load(ctx, properties, b.logger)
	if err != nil {
		b.logger.Error("Load", "err", err)
		return nil, nil, err
	}

	if err := balance.Apply(entry.Leg); err != nil {
		return nil, nil, err
	}

	if err := properties.Set(ctx, store.KeyBalance, balance); err != nil {
		b.logger.Error("properties.Set", "key", store.KeyBalance, "err", err)
		return nil, nil, err
	}

	t := *entry.Draft
	txlog.Stamp(&t, b.now())
	if err := txlog.Insert(ctx, tx, b.sb, &t); err != nil {
		b.logger.Error("txlog.Insert", "err", err)
		return nil, nil, err
	}

	if entry.User != nil {
		if err := properties.Set(ctx, store.KeyUser, entry.User); err != nil {
			b.logger.Error("properties.Set", "key", store.KeyUser, "err", err)
			return nil, nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	b.logger.Debug("entry committed", "id", t.ID, "account", entry.Leg.Account, "direction", entry.Leg.Direction, "amount", entry.Leg.Amount)
	return &t, balance, nil
}
