package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

// Authorizer holds a staged action until it is authorized.
type Authorizer interface {
	Open(ctx context.Context, action core.Action) error
	Submit(ctx context.Context) (core.Action, error)
	Cancel()
}

func New(
	users core.UserStore,
	ledger core.Ledger,
	book core.Book,
	pricing core.Pricing,
	gate Authorizer,
	notifier core.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		ledger:   ledger,
		book:     book,
		pricing:  pricing,
		gate:     gate,
		notifier: notifier,
		logger:   logger.With("service", "checkout"),
	}
}

type Service struct {
	users    core.UserStore
	ledger   core.Ledger
	book     core.Book
	pricing  core.Pricing
	gate     Authorizer
	notifier core.Notifier
	logger   *slog.Logger

	mux sync.Mutex
}

func (s *Service) reject(ctx context.Context, message string, err error) error {
	s.notifier.Show(ctx, message, core.SeverityError)
	return err
}

func (s *Service) invalid(ctx context.Context, message string) error {
	return s.reject(ctx, message, fmt.Errorf("%w: %s", core.ErrInvalidInput, strings.ToLower(message)))
}

func validate(req any) error {
	if _, err := govalidator.ValidateStruct(req); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidInput, err)
	}

	return nil
}

func (s *Service) premium(ctx context.Context) (bool, error) {
	user, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return false, err
	}

	return user.Premium, nil
}

// stage checks the leg against the current balance and opens the gate.
func (s *Service) stage(ctx context.Context, action core.Action, shortage string) (*core.Prompt, error) {
	if leg := action.Leg(); leg.Direction == core.Debit {
		balance, err := s.ledger.Balance(ctx)
		if err != nil {
			s.logger.Error("ledger.Balance", "err", err)
			return nil, err
		}

		if balance.Of(leg.Account).LessThan(leg.Amount) {
			return nil, s.reject(ctx, shortage, fmt.Errorf("%w: %s needs %s", core.ErrInsufficientFunds, leg.Account, leg.Amount))
		}
	}

	if err := s.gate.Open(ctx, action); err != nil {
		if errors.Is(err, core.ErrGateLocked) {
			s.notifier.Show(ctx, "Account is locked. Please wait before trying again.", core.SeverityError)
		}

		return nil, err
	}

	s.logger.Debug("staged", "type", action.Type())
	prompt := action.Prompt()
	return &prompt, nil
}

func (s *Service) StagePayment(ctx context.Context, req PaymentRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil || !req.Amount.IsPositive() {
		return nil, s.invalid(ctx, "Please fill in all required fields")
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	fee, err := s.pricing.PaymentFee(req.Method, req.Amount, premium)
	if err != nil {
		return nil, s.reject(ctx, "Please fill in all required fields", err)
	}

	return s.stage(ctx, core.PaymentAction{
		Method:    req.Method,
		Source:    req.Source,
		Recipient: strings.TrimSpace(req.Recipient),
		Amount:    req.Amount,
		Fee:       fee,
		Note:      req.Note,
	}, "Insufficient balance including fees")
}

func (s *Service) StageRecharge(ctx context.Context, req RechargeRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil || !req.Amount.IsPositive() {
		return nil, s.invalid(ctx, "Please fill in all required fields")
	}

	operator, ok := s.pricing.Operator(req.Category, req.Operator)
	if !ok {
		return nil, s.invalid(ctx, "Please select a valid operator")
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	return s.stage(ctx, core.RechargeAction{
		Category: req.Category,
		Operator: operator,
		Number:   strings.TrimSpace(req.Number),
		Amount:   req.Amount,
		Fee:      s.pricing.RechargeFee(req.Amount, premium),
	}, "Insufficient balance including fees")
}

func (s *Service) StageTicket(ctx context.Context, req TicketRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil {
		return nil, s.invalid(ctx, "Please select a ticket")
	}

	listing, ok := s.pricing.Listing(req.Kind, req.ItemID)
	if !ok {
		return nil, s.invalid(ctx, "Please select a ticket")
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	return s.stage(ctx, core.TicketAction{
		Kind:    req.Kind,
		Listing: listing,
		Date:    req.Date,
		Fee:     s.pricing.TicketFee(req.Kind, premium),
	}, "Insufficient balance for booking")
}

func (s *Service) StageConvert(ctx context.Context, req ConvertRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil || !req.Amount.IsPositive() {
		return nil, s.invalid(ctx, "Please enter a valid amount")
	}

	converted, err := s.pricing.Convert(req.Amount, req.From, req.To)
	if err != nil {
		return nil, s.reject(ctx, "Please select valid currencies", err)
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	return s.stage(ctx, core.ConvertAction{
		From:      strings.ToUpper(req.From),
		To:        strings.ToUpper(req.To),
		Amount:    req.Amount,
		Converted: converted,
		Fee:       s.pricing.ConvertFee(premium),
	}, "Insufficient balance including fees")
}

func (s *Service) StageTrade(ctx context.Context, req TradeRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil || !req.Quantity.IsPositive() {
		return nil, s.invalid(ctx, "Please fill in all fields")
	}

	asset, ok := s.pricing.Asset(req.Market, req.Symbol)
	if !ok {
		return nil, s.invalid(ctx, "Please fill in all fields")
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	notional := asset.Price.Mul(req.Quantity)
	action := core.TradeAction{
		Side:     req.Side,
		Market:   req.Market,
		Symbol:   asset.Symbol,
		Quantity: req.Quantity,
		Price:    asset.Price,
		Fee:      s.pricing.TradeFee(notional, premium),
	}

	// sell proceeds are credited net of the fee and must stay positive
	if leg := action.Leg(); leg.Direction == core.Credit && !leg.Amount.IsPositive() {
		return nil, s.invalid(ctx, "Trade amount does not cover the fee")
	}

	return s.stage(ctx, action, "Insufficient balance for this trade")
}

// StageOption stages a buy of option contracts priced from the chain.
func (s *Service) StageOption(ctx context.Context, req OptionRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if req.Contracts == 0 {
		req.Contracts = 1
	}

	if err := validate(req); err != nil || req.Contracts < 0 {
		return nil, s.invalid(ctx, "Please fill in all fields")
	}

	chain, ok := s.pricing.OptionChain(req.Symbol)
	if !ok || !contains(chain.Expiries, req.Expiry) {
		return nil, s.invalid(ctx, "Please select a valid option")
	}

	var quote *core.OptionQuote
	for i := range chain.Quotes {
		if chain.Quotes[i].Strike.Equal(req.Strike) {
			quote = &chain.Quotes[i]
			break
		}
	}

	if quote == nil {
		return nil, s.invalid(ctx, "Please select a valid option")
	}

	price := quote.Call
	if req.Kind == core.OptionPut {
		price = quote.Put
	}

	premium, err := s.premium(ctx)
	if err != nil {
		return nil, err
	}

	order := &core.OptionOrder{
		Kind:      req.Kind,
		Strike:    quote.Strike,
		Expiry:    req.Expiry,
		Premium:   price,
		Contracts: req.Contracts,
	}

	action := core.TradeAction{
		Side:     core.TradeBuy,
		Market:   core.MarketStocks,
		Symbol:   chain.Symbol,
		Quantity: decimal.NewFromInt(req.Contracts),
		Price:    price,
		Option:   order,
	}
	action.Fee = s.pricing.TradeFee(action.Total(), premium)

	return s.stage(ctx, action, "Insufficient balance for this options trade")
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}

	return false
}

// StagePremium returns a nil prompt when there is nothing to buy.
func (s *Service) StagePremium(ctx context.Context, req PremiumRequest) (*core.Prompt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := validate(req); err != nil {
		return nil, s.invalid(ctx, "Please select a plan")
	}

	user, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return nil, err
	}

	switch {
	case strings.EqualFold(req.Plan, "enterprise"):
		s.notifier.Show(ctx, "Enterprise plan coming soon!", core.SeverityInfo)
		return nil, nil
	case user.Premium:
		s.notifier.Show(ctx, "You are already a Premium member!", core.SeverityInfo)
		return nil, nil
	}

	plan, price, ok := s.pricing.PremiumPlan(req.Plan)
	if !ok {
		return nil, s.invalid(ctx, "Please select a plan")
	}

	return s.stage(ctx, core.PremiumAction{Plan: plan, Price: price}, "Insufficient balance for upgrade")
}

// Submit authorizes the staged action with the buffered pin and commits it.
func (s *Service) Submit(ctx context.Context) (*Receipt, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	action, err := s.gate.Submit(ctx)
	if err != nil {
		return nil, err
	}

	draft, err := action.Draft()
	if err != nil {
		return nil, err
	}

	entry := core.Entry{Leg: action.Leg(), Draft: draft}

	if a, ok := action.(core.PremiumAction); ok {
		user, err := s.users.Find(ctx)
		if err != nil {
			s.logger.Error("users.Find", "err", err)
			return nil, err
		}

		user.Premium = true
		user.PremiumPlan = a.Plan
		entry.User = user
	}

	tx, balance, err := s.book.Commit(ctx, entry)
	if err != nil {
		s.logger.Error("book.Commit", "type", action.Type(), "err", err)
		return nil, s.reject(ctx, "Transaction failed. Please try again.", err)
	}

	s.logger.Info("committed", "id", tx.ID, "reference", tx.Reference, "type", action.Type(), "amount", tx.Amount, "fee", tx.Fee)
	s.notifier.Show(ctx, successMessage(action), core.SeveritySuccess)
	return &Receipt{Transaction: tx, Balance: balance}, nil
}

// Cancel drops the staged action without committing anything.
func (s *Service) Cancel() {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.gate.Cancel()
}

func successMessage(action core.Action) string {
	switch a := action.(type) {
	case core.PaymentAction:
		return fmt.Sprintf("Payment of $%s sent successfully to %s!", a.Amount, a.Recipient)
	case core.RechargeAction:
		return fmt.Sprintf("Recharge of $%s initiated successfully for %s!", a.Amount, a.Number)
	case core.TicketAction:
		return fmt.Sprintf("Booking confirmed for %s!", a.Listing.Title)
	case core.ConvertAction:
		return fmt.Sprintf("Successfully converted %s %s to %s %s", a.Amount, a.From, a.Converted.StringFixed(6), a.To)
	case core.TradeAction:
		verb := "bought"
		if a.Side == core.TradeSell {
			verb = "sold"
		}

		if o := a.Option; o != nil {
			return fmt.Sprintf("Successfully %s %d %s option contract for %s!", verb, o.Contracts, strings.ToUpper(string(o.Kind)), a.Symbol)
		}

		return fmt.Sprintf("Successfully %s %s %s for $%s", verb, a.Quantity, a.Symbol, a.Total().StringFixed(2))
	case core.PremiumAction:
		return "Upgraded to Premium successfully!"
	default:
		return "Transaction completed"
	}
}
