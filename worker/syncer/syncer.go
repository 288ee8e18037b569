package syncer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
)

var errNotConnected = errors.New("no wallet connected")

type Config struct {
	Interval time.Duration `valid:"required"`
}

func New(
	wallets core.WalletStore,
	bridge core.WalletBridge,
	properties core.PropertyStore,
	logger *slog.Logger,
	cfg Config,
) *Syncer {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Syncer{
		wallets:    wallets,
		bridge:     bridge,
		properties: properties,
		logger:     logger.With("worker", "syncer"),
		cfg:        cfg,
	}
}

// Syncer keeps a snapshot of the connected wallet's on-chain account. The
// snapshot is read-only data next to the ledger, never merged into it.
type Syncer struct {
	wallets    core.WalletStore
	bridge     core.WalletBridge
	properties core.PropertyStore
	logger     *slog.Logger
	cfg        Config
}

func (w *Syncer) Run(ctx context.Context) error {
	w.logger.Info("syncer start")

	for {
		dur := w.cfg.Interval
		if err := w.run(ctx); err != nil && !errors.Is(err, errNotConnected) {
			dur = 2 * w.cfg.Interval
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(dur):
		}
	}
}

func (w *Syncer) run(ctx context.Context) error {
	wallet, err := w.wallets.Find(ctx)
	if err != nil {
		w.logger.Error("wallets.Find", "err", err)
		return err
	}

	if wallet == nil || len(wallet.Accounts) == 0 {
		if err := w.properties.Remove(ctx, store.KeyAccount); err != nil {
			w.logger.Error("properties.Remove", "err", err)
			return err
		}

		return errNotConnected
	}

	address := wallet.Accounts[0].Address
	info, err := w.bridge.AccountInfo(ctx, address)
	if err != nil {
		w.logger.Error("bridge.AccountInfo", "address", address, "err", err)
		return err
	}

	if err := w.properties.Set(ctx, store.KeyAccount, info); err != nil {
		w.logger.Error("properties.Set", "err", err)
		return err
	}

	w.logger.Debug("account synced", "address", address, "round", info.Round, "balance", info.Balance)
	return nil
}

// Load returns the last synced snapshot, nil when there is none.
func Load(ctx context.Context, properties core.PropertyStore) (*core.AccountInfo, error) {
	var info *core.AccountInfo
	if err := properties.Get(ctx, store.KeyAccount, &info); err != nil {
		return nil, err
	}

	return info, nil
}
