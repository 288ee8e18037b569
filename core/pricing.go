package core

import "github.com/shopspring/decimal"

type Currency struct {
	Code string          `json:"code"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

type Operator struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category RechargeCategory `json:"category"`
}

type TicketListing struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	Venue    string          `json:"venue,omitempty"`
	Depart   string          `json:"depart,omitempty"`
	Arrive   string          `json:"arrive,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

type Market string

const (
	MarketStocks  Market = "stocks"
	MarketCrypto  Market = "crypto"
	MarketIndices Market = "indices"
)

type TradeAsset struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Market Market          `json:"market"`
	Price  decimal.Decimal `json:"price"`
	Change decimal.Decimal `json:"change"`
}

type OptionQuote struct {
	Strike decimal.Decimal `json:"strike"`
	Call   decimal.Decimal `json:"call"`
	Put    decimal.Decimal `json:"put"`
}

type OptionChain struct {
	Symbol   string        `json:"symbol"`
	Expiries []string      `json:"expiries"`
	Quotes   []OptionQuote `json:"quotes"`
}

// Pricing holds fee policy and the reference tables the orchestrators quote
// against. All fee methods return zero for premium users.
type Pricing interface {
	PaymentFee(method PaymentMethod, amount decimal.Decimal, premium bool) (decimal.Decimal, error)
	RechargeFee(amount decimal.Decimal, premium bool) decimal.Decimal
	TicketFee(kind TicketKind, premium bool) decimal.Decimal
	ConvertFee(premium bool) decimal.Decimal
	TradeFee(notional decimal.Decimal, premium bool) decimal.Decimal
	// PremiumPlan matches name case-insensitively and returns the plan's
	// display name with its monthly price.
	PremiumPlan(name string) (string, decimal.Decimal, bool)

	Currencies() []Currency
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
	Operators(category RechargeCategory) []Operator
	Operator(category RechargeCategory, id string) (Operator, bool)
	RechargePlans() []decimal.Decimal
	Listings(kind TicketKind) []TicketListing
	Listing(kind TicketKind, id string) (TicketListing, bool)
	Assets(market Market) []TradeAsset
	Asset(market Market, symbol string) (TradeAsset, bool)
	OptionChain(symbol string) (OptionChain, bool)
}
