package algorand

import (
	"context"
	"math/big"
	"strconv"
	"sync"

	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
	"github.com/zyedidia/generic/cache"
)

type assetResponse struct {
	Index  uint64 `json:"index"`
	Params struct {
		Name     string `json:"name"`
		UnitName string `json:"unit-name"`
		Decimals int32  `json:"decimals"`
		Total    uint64 `json:"total"`
		Creator  string `json:"creator"`
		URL      string `json:"url"`
	} `json:"params"`
}

// native ALGO has no asset record on chain
var algo = &core.Asset{
	ID:       0,
	Name:     "Algorand",
	UnitName: "ALGO",
	Decimals: 6,
	Total:    10_000_000_000_000_000,
}

func newAssetService(n *node) *assetService {
	return &assetService{
		node:  n,
		cache: cache.New[uint64, *core.Asset](1024),
	}
}

type assetService struct {
	node *node

	cache *cache.Cache[uint64, *core.Asset]
	mux   sync.Mutex
}

func (s *assetService) Find(ctx context.Context, id uint64) (*core.Asset, error) {
	if id == 0 {
		return algo, nil
	}

	s.mux.Lock()
	v, ok := s.cache.Get(id)
	s.mux.Unlock()
	if ok {
		return v, nil
	}

	var resp assetResponse
	params := map[string]string{"id": strconv.FormatUint(id, 10)}
	if err := s.node.get(ctx, s.node.algod, "/v2/assets/{id}", params, nil, &resp); err != nil {
		return nil, err
	}

	v = &core.Asset{
		ID:       resp.Index,
		Name:     resp.Params.Name,
		UnitName: resp.Params.UnitName,
		Decimals: resp.Params.Decimals,
		Total:    resp.Params.Total,
		Creator:  resp.Params.Creator,
		URL:      resp.Params.URL,
	}

	s.mux.Lock()
	s.cache.Put(v.ID, v)
	s.mux.Unlock()

	return v, nil
}

// Units converts base units of the asset into whole units.
func Units(amount uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -decimals)
}

// BaseUnits converts whole units into base units, truncating anything
// finer than the asset allows.
func BaseUnits(amount decimal.Decimal, decimals int32) uint64 {
	return uint64(amount.Shift(decimals).Truncate(0).IntPart())
}

var mockPrices = map[string]decimal.Decimal{
	"ALGO": decimal.RequireFromString("0.18"),
	"USDC": decimal.NewFromInt(1),
	"USDT": decimal.NewFromInt(1),
}

// Price returns the reference USD price of a common asset, zero when unknown.
func Price(network string, id uint64) decimal.Decimal {
	for symbol, assetID := range CommonAssets(network) {
		if assetID == id {
			return mockPrices[symbol]
		}
	}

	return decimal.Zero
}
