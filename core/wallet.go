package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type WalletKind string

const (
	WalletPera   WalletKind = "pera"
	WalletMyAlgo WalletKind = "myalgo"
	WalletDefly  WalletKind = "defly"
	WalletExodus WalletKind = "exodus"
)

func (k WalletKind) Valid() bool {
	switch k {
	case WalletPera, WalletMyAlgo, WalletDefly, WalletExodus:
		return true
	}

	return false
}

type WalletAccount struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Wallet is the persisted connection to an external signer.
type Wallet struct {
	Kind      WalletKind      `json:"kind"`
	Accounts  []WalletAccount `json:"accounts"`
	Session   string          `json:"-"`
	CreatedAt time.Time       `json:"created_at"`
}

type WalletStore interface {
	Save(ctx context.Context, wallet *Wallet) error
	// Find returns nil, nil when no wallet is connected
	Find(ctx context.Context) (*Wallet, error)
	Delete(ctx context.Context) error
}

type AccountInfo struct {
	Address    string          `json:"address"`
	Balance    decimal.Decimal `json:"balance"`
	MinBalance decimal.Decimal `json:"min_balance"`
	Assets     []AssetHolding  `json:"assets"`
	Round      uint64          `json:"round"`
	SyncedAt   time.Time       `json:"synced_at"`
}

type ChainTransaction struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	Sender         string          `json:"sender"`
	Receiver       string          `json:"receiver,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	AssetID        uint64          `json:"asset_id,omitempty"`
	Fee            decimal.Decimal `json:"fee"`
	ConfirmedRound uint64          `json:"confirmed_round"`
	RoundTime      time.Time       `json:"round_time"`
	Note           string          `json:"note,omitempty"`
}

// TransferIntent is what a remote signer is asked to sign and broadcast.
// Amount is in base units (microalgos for ALGO).
type TransferIntent struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	AssetID  uint64 `json:"asset_id,omitempty"`
	Amount   uint64 `json:"amount"`
	Note     string `json:"note,omitempty"`
}

//go:generate mockgen -source=wallet.go -destination=mocks/wallet.go -package=mocks

type WalletConnector interface {
	Connect(ctx context.Context) (session string, accounts []WalletAccount, err error)
	Disconnect(ctx context.Context, session string) error
	Submit(ctx context.Context, session string, intent *TransferIntent) (txID string, err error)
}

type WalletBridge interface {
	Connect(ctx context.Context, kind WalletKind) ([]WalletAccount, error)
	Disconnect(ctx context.Context) error
	AccountInfo(ctx context.Context, address string) (*AccountInfo, error)
	SendPayment(ctx context.Context, receiver string, amount decimal.Decimal, note string) (string, error)
	SendAsset(ctx context.Context, receiver string, assetID, amount uint64, note string) (string, error)
	OptIn(ctx context.Context, assetID uint64) (string, error)
	Swap(ctx context.Context, fromAsset, toAsset, amount uint64) (string, error)
	History(ctx context.Context, address string, limit int) ([]*ChainTransaction, error)
}
