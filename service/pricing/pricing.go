package pricing

import (
	"fmt"
	"strings"

	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

// ConvertPrecision is the number of decimals conversion results are
// rounded to.
const ConvertPrecision = 6

func New(cfg Config) core.Pricing {
	s := &service{
		cfg:        cfg,
		currencies: make(map[string]core.Currency, len(cfg.Currencies)),
		assets:     make(map[string]core.TradeAsset, len(cfg.Assets)),
		chains:     make(map[string]core.OptionChain, len(cfg.OptionChains)),
		plans:      make(map[string]string, len(cfg.PremiumPlans)),
	}

	for name := range cfg.PremiumPlans {
		s.plans[strings.ToLower(name)] = name
	}

	for _, c := range cfg.Currencies {
		if !c.Rate.IsPositive() {
			panic(fmt.Errorf("currency %s: rate must be positive", c.Code))
		}

		s.currencies[strings.ToUpper(c.Code)] = c
	}

	for _, a := range cfg.Assets {
		s.assets[assetKey(a.Market, a.Symbol)] = a
	}

	for _, c := range cfg.OptionChains {
		s.chains[strings.ToUpper(c.Symbol)] = c
	}

	return s
}

type service struct {
	cfg        Config
	currencies map[string]core.Currency
	assets     map[string]core.TradeAsset
	chains     map[string]core.OptionChain
	plans      map[string]string
}

func assetKey(market core.Market, symbol string) string {
	return string(market) + ":" + strings.ToUpper(symbol)
}

func slug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func (s *service) PaymentFee(method core.PaymentMethod, amount decimal.Decimal, premium bool) (decimal.Decimal, error) {
	fee, ok := s.cfg.PaymentFees[method]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown payment method %q", core.ErrInvalidInput, method)
	}

	if premium {
		return decimal.Zero, nil
	}

	return fee.apply(amount), nil
}

func (s *service) RechargeFee(amount decimal.Decimal, premium bool) decimal.Decimal {
	if premium {
		return decimal.Zero
	}

	return s.cfg.RechargeFee.apply(amount)
}

func (s *service) TicketFee(kind core.TicketKind, premium bool) decimal.Decimal {
	if premium {
		return decimal.Zero
	}

	return s.cfg.TicketFees[kind].apply(decimal.Zero)
}

func (s *service) ConvertFee(premium bool) decimal.Decimal {
	if premium {
		return decimal.Zero
	}

	return s.cfg.ConvertFee.apply(decimal.Zero)
}

func (s *service) TradeFee(notional decimal.Decimal, premium bool) decimal.Decimal {
	if premium {
		return decimal.Zero
	}

	for _, tier := range s.cfg.TradeTiers {
		if tier.Below.IsZero() || notional.LessThan(tier.Below) {
			return tier.Fee
		}
	}

	return decimal.Zero
}

func (s *service) PremiumPlan(name string) (string, decimal.Decimal, bool) {
	plan, ok := s.plans[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", decimal.Zero, false
	}

	return plan, s.cfg.PremiumPlans[plan], true
}

func (s *service) Currencies() []core.Currency {
	return s.cfg.Currencies
}

func (s *service) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", core.ErrInvalidInput)
	}

	src, ok := s.currencies[strings.ToUpper(from)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown currency %q", core.ErrInvalidInput, from)
	}

	dst, ok := s.currencies[strings.ToUpper(to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown currency %q", core.ErrInvalidInput, to)
	}

	return amount.Div(src.Rate).Mul(dst.Rate).Round(ConvertPrecision), nil
}

func (s *service) Operators(category core.RechargeCategory) []core.Operator {
	var operators []core.Operator
	for _, op := range s.cfg.Operators {
		if op.Category == category {
			operators = append(operators, op)
		}
	}

	return operators
}

func (s *service) Operator(category core.RechargeCategory, id string) (core.Operator, bool) {
	for _, op := range s.cfg.Operators {
		if op.Category == category && (op.ID == id || strings.EqualFold(op.Name, id)) {
			return op, true
		}
	}

	return core.Operator{}, false
}

func (s *service) RechargePlans() []decimal.Decimal {
	return s.cfg.RechargePlans
}

func (s *service) Listings(kind core.TicketKind) []core.TicketListing {
	switch kind {
	case core.TicketEvents:
		return s.cfg.Events
	case core.TicketFlight, core.TicketTrain, core.TicketBus:
		return s.cfg.Transport
	default:
		return nil
	}
}

func (s *service) Listing(kind core.TicketKind, id string) (core.TicketListing, bool) {
	for _, l := range s.Listings(kind) {
		if l.ID == id {
			return l, true
		}
	}

	return core.TicketListing{}, false
}

func (s *service) Assets(market core.Market) []core.TradeAsset {
	var assets []core.TradeAsset
	for _, a := range s.cfg.Assets {
		if a.Market == market {
			assets = append(assets, a)
		}
	}

	return assets
}

func (s *service) Asset(market core.Market, symbol string) (core.TradeAsset, bool) {
	a, ok := s.assets[assetKey(market, symbol)]
	return a, ok
}

func (s *service) OptionChain(symbol string) (core.OptionChain, bool) {
	c, ok := s.chains[strings.ToUpper(symbol)]
	return c, ok
}
