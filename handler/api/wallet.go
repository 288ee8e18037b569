package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/algorand"
	"github.com/pandodao/algopayx/worker/syncer"
	"github.com/shopspring/decimal"
)

const defaultHistoryLimit = 20

func (s *Server) walletAddress(ctx context.Context) (string, error) {
	user, err := s.users.Find(ctx)
	if err != nil {
		return "", err
	}

	if user.WalletAddress == "" {
		return "", core.ErrNotConnected
	}

	return user.WalletAddress, nil
}

type txResponse struct {
	TxID string `json:"tx_id"`
}

// handleAccount serves the snapshot kept by the syncer and falls back to
// the node when none has been taken yet.
func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := s.walletAddress(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	info, err := syncer.Load(ctx, s.properties)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	if info == nil || info.Address != address {
		if info, err = s.bridge.AccountInfo(ctx, address); err != nil {
			s.renderError(w, r, err)
			return
		}
	}

	renderJSON(w, http.StatusOK, info)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := s.walletAddress(ctx)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	limit, err := queryInt(r, "limit", defaultHistoryLimit)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	txs, err := s.bridge.History(ctx, address, limit)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txs)
}

type commonAsset struct {
	Symbol  string          `json:"symbol"`
	AssetID uint64          `json:"asset_id"`
	Price   decimal.Decimal `json:"price"`
}

func (s *Server) handleCommonAssets(w http.ResponseWriter, r *http.Request) {
	var assets []commonAsset
	for symbol, id := range algorand.CommonAssets(s.cfg.Network) {
		assets = append(assets, commonAsset{
			Symbol:  symbol,
			AssetID: id,
			Price:   algorand.Price(s.cfg.Network, id),
		})
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].AssetID < assets[j].AssetID
	})

	renderJSON(w, http.StatusOK, assets)
}

func (s *Server) handleSendPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Receiver string          `json:"receiver"`
		Amount   decimal.Decimal `json:"amount"`
		Note     string          `json:"note"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if req.Receiver == "" || !req.Amount.IsPositive() {
		s.renderError(w, r, fmt.Errorf("%w: receiver and a positive amount are required", core.ErrInvalidInput))
		return
	}

	txID, err := s.bridge.SendPayment(r.Context(), req.Receiver, req.Amount, req.Note)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txResponse{TxID: txID})
}

func (s *Server) handleSendAsset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Receiver string `json:"receiver"`
		AssetID  uint64 `json:"asset_id"`
		Amount   uint64 `json:"amount"`
		Note     string `json:"note"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if req.Receiver == "" || req.Amount == 0 {
		s.renderError(w, r, fmt.Errorf("%w: receiver and a positive amount are required", core.ErrInvalidInput))
		return
	}

	txID, err := s.bridge.SendAsset(r.Context(), req.Receiver, req.AssetID, req.Amount, req.Note)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txResponse{TxID: txID})
}

func (s *Server) handleOptIn(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.renderError(w, r, fmt.Errorf("%w: asset id: %w", core.ErrInvalidInput, err))
		return
	}

	txID, err := s.bridge.OptIn(r.Context(), id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txResponse{TxID: txID})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromAsset uint64 `json:"from_asset"`
		ToAsset   uint64 `json:"to_asset"`
		Amount    uint64 `json:"amount"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	if req.FromAsset == req.ToAsset || req.Amount == 0 {
		s.renderError(w, r, fmt.Errorf("%w: swap needs two different assets and a positive amount", core.ErrInvalidInput))
		return
	}

	txID, err := s.bridge.Swap(r.Context(), req.FromAsset, req.ToAsset, req.Amount)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txResponse{TxID: txID})
}
