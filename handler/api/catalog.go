package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

const defaultListLimit = 50

func (s *Server) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.pricing.Currencies())
}

func (s *Server) handleOperators(w http.ResponseWriter, r *http.Request) {
	category := core.RechargeCategory(chi.URLParam(r, "category"))
	if !category.Valid() {
		s.renderError(w, r, fmt.Errorf("%w: unknown recharge category %q", core.ErrInvalidInput, category))
		return
	}

	renderJSON(w, http.StatusOK, s.pricing.Operators(category))
}

func (s *Server) handleRechargePlans(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.pricing.RechargePlans())
}

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	kind := core.TicketKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		s.renderError(w, r, fmt.Errorf("%w: unknown ticket kind %q", core.ErrInvalidInput, kind))
		return
	}

	renderJSON(w, http.StatusOK, s.pricing.Listings(kind))
}

func (s *Server) handleTradeAssets(w http.ResponseWriter, r *http.Request) {
	market := core.Market(chi.URLParam(r, "market"))
	switch market {
	case core.MarketStocks, core.MarketCrypto, core.MarketIndices:
	default:
		s.renderError(w, r, fmt.Errorf("%w: unknown market %q", core.ErrInvalidInput, market))
		return
	}

	renderJSON(w, http.StatusOK, s.pricing.Assets(market))
}

func (s *Server) handleOptionChain(w http.ResponseWriter, r *http.Request) {
	chain, ok := s.pricing.OptionChain(strings.ToUpper(chi.URLParam(r, "symbol")))
	if !ok {
		renderJSON(w, http.StatusNotFound, errorResponse{Code: "not_found", Message: "no option chain for symbol"})
		return
	}

	renderJSON(w, http.StatusOK, chain)
}

type quoteResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Fee       decimal.Decimal `json:"fee"`
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := decimal.NewFromString(q.Get("amount"))
	if err != nil {
		s.renderError(w, r, fmt.Errorf("%w: amount: %w", core.ErrInvalidInput, err))
		return
	}

	from, to := strings.ToUpper(q.Get("from")), strings.ToUpper(q.Get("to"))
	converted, err := s.pricing.Convert(amount, from, to)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	user, err := s.users.Find(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, quoteResponse{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: converted,
		Fee:       s.pricing.ConvertFee(user.Premium),
	})
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.ledger.Balance(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, balance)
}

func transactionFilter(r *http.Request) (core.TransactionFilter, error) {
	q := r.URL.Query()
	filter := core.TransactionFilter{
		Type:  core.TransactionType(q.Get("type")),
		Query: strings.TrimSpace(q.Get("q")),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return filter, fmt.Errorf("%w: unknown transaction type %q", core.ErrInvalidInput, filter.Type)
	}

	limit, err := queryInt(r, "limit", defaultListLimit)
	if err != nil {
		return filter, err
	}

	filter.Limit = limit
	return filter, nil
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilter(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	txs, err := s.txlog.List(r.Context(), filter)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, txs)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	filter, err := transactionFilter(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	summary, err := s.txlog.Summary(r.Context(), filter)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, summary)
}

func (s *Server) handleToasts(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.toasts.Active())
}

func (s *Server) handleDismissToast(w http.ResponseWriter, r *http.Request) {
	if !s.toasts.Dismiss(chi.URLParam(r, "id")) {
		renderJSON(w, http.StatusNotFound, errorResponse{Code: "not_found", Message: "toast not found"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
