package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
)

func New(properties core.PropertyStore, logger *slog.Logger) core.Ledger {
	return &ledgerStore{
		properties: properties,
		logger:     logger.With("store", "ledger"),
	}
}

type ledgerStore struct {
	properties core.PropertyStore
	logger     *slog.Logger
}

// mux serializes every read-modify-write of the balance snapshot in this
// process, across the ledger and the book.
var mux sync.Mutex

// Load reads the balance snapshot stored under store.KeyBalance. Missing or
// unreadable snapshots yield the default balance.
func Load(ctx context.Context, properties core.PropertyStore, logger *slog.Logger) (*core.Balance, error) {
	var balance *core.Balance
	if err := properties.Get(ctx, store.KeyBalance, &balance); err != nil {
		if !store.IsErrCorrupted(err) {
			return nil, err
		}

		logger.Error("properties.Get", "key", store.KeyBalance, "err", err)
		balance = nil
	}

	if balance == nil {
		b := core.DefaultBalance()
		balance = &b
	}

	return balance, nil
}

func (s *ledgerStore) Balance(ctx context.Context) (*core.Balance, error) {
	mux.Lock()
	defer mux.Unlock()

	return Load(ctx, s.properties, s.logger)
}

func (s *ledgerStore) Update(ctx context.Context, leg core.Leg) (*core.Balance, error) {
	mux.Lock()
	defer mux.Unlock()

	balance, err := Load(ctx, s.properties, s.logger)
	if err != nil {
		return nil, err
	}

	if err := balance.Apply(leg); err != nil {
		return nil, err
	}

	if err := s.properties.Set(ctx, store.KeyBalance, balance); err != nil {
		s.logger.Error("properties.Set", "key", store.KeyBalance, "err", err)
		return nil, err
	}

	return balance, nil
}
