package checkout

import (
	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	Method    core.PaymentMethod `json:"method" valid:"in(bank|mobile|qr),required"`
	Source    core.Account       `json:"source" valid:"in(bank|algo|usdc),required"`
	Recipient string             `json:"recipient" valid:"required"`
	Amount    decimal.Decimal    `json:"amount" valid:"-"`
	Note      string             `json:"note" valid:"-"`
}

type RechargeRequest struct {
	Category core.RechargeCategory `json:"category" valid:"in(mobile|dth|gaming),required"`
	Operator string                `json:"operator" valid:"required"`
	Number   string                `json:"number" valid:"required"`
	Amount   decimal.Decimal       `json:"amount" valid:"-"`
}

type TicketRequest struct {
	Kind   core.TicketKind `json:"kind" valid:"in(flight|train|bus|events),required"`
	ItemID string          `json:"item_id" valid:"required"`
	Date   string          `json:"date" valid:"-"`
}

type ConvertRequest struct {
	From   string          `json:"from" valid:"required"`
	To     string          `json:"to" valid:"required"`
	Amount decimal.Decimal `json:"amount" valid:"-"`
}

type TradeRequest struct {
	Side     core.TradeSide  `json:"side" valid:"in(buy|sell),required"`
	Market   core.Market     `json:"market" valid:"in(stocks|crypto|indices),required"`
	Symbol   string          `json:"symbol" valid:"required"`
	Quantity decimal.Decimal `json:"quantity" valid:"-"`
}

type OptionRequest struct {
	Symbol    string          `json:"symbol" valid:"required"`
	Kind      core.OptionKind `json:"kind" valid:"in(call|put),required"`
	Strike    decimal.Decimal `json:"strike" valid:"-"`
	Expiry    string          `json:"expiry" valid:"required"`
	Contracts int64           `json:"contracts" valid:"-"`
}

type PremiumRequest struct {
	Plan string `json:"plan" valid:"required"`
}

// Receipt is the outcome of an authorized action.
type Receipt struct {
	Transaction *core.Transaction `json:"transaction"`
	Balance     *core.Balance     `json:"balance"`
}
