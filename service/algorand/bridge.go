package algorand

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/algopayx/core"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

const algoDecimals = 6

var errPending = errors.New("transaction pending")

func New(wallets core.WalletStore, logger *slog.Logger, cfg Config) *Bridge {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	if cfg.ConfirmRounds <= 0 {
		cfg.ConfirmRounds = DefaultConfig().ConfirmRounds
	}

	if cfg.RoundInterval <= 0 {
		cfg.RoundInterval = DefaultConfig().RoundInterval
	}

	logger = logger.With("service", "algorand")
	n := newNode(cfg, func(name string, from, to gobreaker.State) {
		logger.Warn("circuit breaker", "name", name, "from", from.String(), "to", to.String())
	})

	return &Bridge{
		cfg:     cfg,
		node:    n,
		assets:  newAssetService(n),
		loader:  newLoader(cfg),
		wallets: wallets,
		logger:  logger,
		now:     time.Now,
	}
}

var _ core.WalletBridge = (*Bridge)(nil)

// Bridge reads chain state from algod and the indexer and delegates signing
// to the remote signer of the connected wallet. It never touches the ledger.
type Bridge struct {
	cfg     Config
	node    *node
	assets  *assetService
	loader  *loader
	wallets core.WalletStore
	logger  *slog.Logger
	now     func() time.Time

	sf singleflight.Group
}

// Assets exposes the cached asset lookups.
func (b *Bridge) Assets() core.AssetService {
	return b.assets
}

func (b *Bridge) Network() string {
	return b.cfg.Network
}

func (b *Bridge) Connect(ctx context.Context, kind core.WalletKind) ([]core.WalletAccount, error) {
	connector, err := b.loader.load(kind)
	if err != nil {
		return nil, err
	}

	session, accounts, err := connector.Connect(ctx)
	if err != nil {
		b.logger.Error("connector.Connect", "kind", kind, "err", err)
		return nil, err
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: %s returned no accounts", core.ErrNotConnected, kind)
	}

	wallet := &core.Wallet{
		Kind:      kind,
		Accounts:  accounts,
		Session:   session,
		CreatedAt: b.now(),
	}

	if err := b.wallets.Save(ctx, wallet); err != nil {
		b.logger.Error("wallets.Save", "err", err)
		return nil, err
	}

	b.logger.Info("wallet connected", "kind", kind, "accounts", len(accounts))
	return accounts, nil
}

func (b *Bridge) active(ctx context.Context) (*core.Wallet, core.WalletConnector, error) {
	wallet, err := b.wallets.Find(ctx)
	if err != nil {
		b.logger.Error("wallets.Find", "err", err)
		return nil, nil, err
	}

	if wallet == nil || len(wallet.Accounts) == 0 {
		return nil, nil, core.ErrNotConnected
	}

	connector, err := b.loader.load(wallet.Kind)
	if err != nil {
		return nil, nil, err
	}

	return wallet, connector, nil
}

func (b *Bridge) Disconnect(ctx context.Context) error {
	wallet, connector, err := b.active(ctx)
	if err != nil {
		return err
	}

	// the local connection goes away even if the signer is unreachable
	if err := connector.Disconnect(ctx, wallet.Session); err != nil {
		b.logger.Warn("connector.Disconnect", "kind", wallet.Kind, "err", err)
	}

	if err := b.wallets.Delete(ctx); err != nil {
		b.logger.Error("wallets.Delete", "err", err)
		return err
	}

	b.logger.Info("wallet disconnected", "kind", wallet.Kind)
	return nil
}

type accountResponse struct {
	Address    string `json:"address"`
	Amount     uint64 `json:"amount"`
	MinBalance uint64 `json:"min-balance"`
	Round      uint64 `json:"round"`
	Assets     []struct {
		AssetID  uint64 `json:"asset-id"`
		Amount   uint64 `json:"amount"`
		IsFrozen bool   `json:"is-frozen"`
	} `json:"assets"`
}

func (b *Bridge) AccountInfo(ctx context.Context, address string) (*core.AccountInfo, error) {
	v, err, _ := b.sf.Do(address, func() (any, error) {
		return b.accountInfo(ctx, address)
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.AccountInfo), nil
}

func (b *Bridge) accountInfo(ctx context.Context, address string) (*core.AccountInfo, error) {
	var resp accountResponse
	params := map[string]string{"address": address}
	if err := b.node.get(ctx, b.node.algod, "/v2/accounts/{address}", params, nil, &resp); err != nil {
		return nil, err
	}

	info := &core.AccountInfo{
		Address:    resp.Address,
		Balance:    Units(resp.Amount, algoDecimals),
		MinBalance: Units(resp.MinBalance, algoDecimals),
		Round:      resp.Round,
		SyncedAt:   b.now(),
	}

	for _, h := range resp.Assets {
		holding := core.AssetHolding{
			AssetID:  h.AssetID,
			Amount:   Units(h.Amount, 0),
			IsFrozen: h.IsFrozen,
		}

		// base units are kept when the asset cannot be resolved
		if asset, err := b.assets.Find(ctx, h.AssetID); err == nil {
			holding.Amount = Units(h.Amount, asset.Decimals)
		} else {
			b.logger.Debug("assets.Find", "id", h.AssetID, "err", err)
		}

		info.Assets = append(info.Assets, holding)
	}

	return info, nil
}

func (b *Bridge) submit(ctx context.Context, intent *core.TransferIntent) (string, error) {
	wallet, connector, err := b.active(ctx)
	if err != nil {
		return "", err
	}

	intent.Sender = wallet.Accounts[0].Address
	if intent.Receiver == "" {
		intent.Receiver = intent.Sender
	}

	txID, err := connector.Submit(ctx, wallet.Session, intent)
	if err != nil {
		b.logger.Error("connector.Submit", "kind", wallet.Kind, "err", err)
		return "", err
	}

	logger := b.logger.With("tx", txID)
	logger.Debug("submitted", "asset", intent.AssetID, "amount", intent.Amount)

	round, err := b.waitForConfirmation(ctx, txID)
	if err != nil {
		logger.Error("waitForConfirmation", "err", err)
		return txID, err
	}

	logger.Info("confirmed", "round", round)
	return txID, nil
}

type pendingResponse struct {
	ConfirmedRound uint64 `json:"confirmed-round"`
	PoolError      string `json:"pool-error"`
}

// waitForConfirmation polls the pending pool once per round for at most
// ConfirmRounds rounds.
func (b *Bridge) waitForConfirmation(ctx context.Context, txID string) (uint64, error) {
	var round uint64
	backoff := retry.WithMaxRetries(uint64(b.cfg.ConfirmRounds), retry.NewConstant(b.cfg.RoundInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var resp pendingResponse
		params := map[string]string{"txid": txID}
		if err := b.node.get(ctx, b.node.algod, "/v2/transactions/pending/{txid}", params, nil, &resp); err != nil {
			return retry.RetryableError(err)
		}

		if resp.PoolError != "" {
			return fmt.Errorf("transaction %s rejected: %s", txID, resp.PoolError)
		}

		if resp.ConfirmedRound == 0 {
			return retry.RetryableError(errPending)
		}

		round = resp.ConfirmedRound
		return nil
	})

	if errors.Is(err, errPending) {
		return 0, fmt.Errorf("transaction %s not confirmed after %d rounds", txID, b.cfg.ConfirmRounds)
	}

	return round, err
}

// SendPayment sends amount ALGO to receiver.
func (b *Bridge) SendPayment(ctx context.Context, receiver string, amount decimal.Decimal, note string) (string, error) {
	if !amount.IsPositive() {
		return "", fmt.Errorf("%w: amount must be positive", core.ErrInvalidInput)
	}

	return b.submit(ctx, &core.TransferIntent{
		Receiver: receiver,
		Amount:   BaseUnits(amount, algoDecimals),
		Note:     note,
	})
}

func (b *Bridge) SendAsset(ctx context.Context, receiver string, assetID, amount uint64, note string) (string, error) {
	return b.submit(ctx, &core.TransferIntent{
		Receiver: receiver,
		AssetID:  assetID,
		Amount:   amount,
		Note:     note,
	})
}

// OptIn is a zero amount transfer of the asset to ourselves.
func (b *Bridge) OptIn(ctx context.Context, assetID uint64) (string, error) {
	if assetID == 0 {
		return "", fmt.Errorf("%w: ALGO needs no opt in", core.ErrInvalidInput)
	}

	return b.submit(ctx, &core.TransferIntent{AssetID: assetID})
}

// Swap records the intent as a self transfer of the source asset; no DEX
// routing is done.
func (b *Bridge) Swap(ctx context.Context, fromAsset, toAsset, amount uint64) (string, error) {
	return b.submit(ctx, &core.TransferIntent{
		AssetID: fromAsset,
		Amount:  amount,
		Note:    fmt.Sprintf("Swap %d to %d", fromAsset, toAsset),
	})
}
