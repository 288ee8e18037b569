package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Asset is an Algorand standard asset.
type Asset struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	UnitName string `json:"unit_name"`
	Decimals int32  `json:"decimals"`
	Total    uint64 `json:"total"`
	Creator  string `json:"creator,omitempty"`
	URL      string `json:"url,omitempty"`
}

type AssetHolding struct {
	AssetID  uint64          `json:"asset_id"`
	Amount   decimal.Decimal `json:"amount"`
	IsFrozen bool            `json:"is_frozen"`
}

//go:generate mockgen -source=asset.go -destination=mocks/asset.go -package=mocks

type AssetService interface {
	Find(ctx context.Context, id uint64) (*Asset, error)
}
