package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type ActionType string

const (
	ActionPayment  ActionType = "payment"
	ActionRecharge ActionType = "recharge"
	ActionTicket   ActionType = "ticket"
	ActionConvert  ActionType = "convert"
	ActionTrade    ActionType = "trade"
	ActionPremium  ActionType = "premium"
)

// Prompt is what the authorization gate shows while an action is pending.
type Prompt struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
}

// Action is a staged, not yet authorized, balance mutation. The set of
// implementations is closed: one per domain.
type Action interface {
	Type() ActionType
	Leg() Leg
	Draft() (*Transaction, error)
	Prompt() Prompt
	action()
}

func draft(typ TransactionType, amount, fee decimal.Decimal, currency, desc, recipient string, details any) (*Transaction, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("marshal details: %w", err)
	}

	return &Transaction{
		Type:        typ,
		Status:      TransactionStatusCompleted,
		Amount:      amount,
		Currency:    currency,
		Description: desc,
		Recipient:   recipient,
		Fee:         fee,
		Details:     raw,
	}, nil
}

func usd(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

type PaymentMethod string

const (
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodQR     PaymentMethod = "qr"
)

type PaymentAction struct {
	Method    PaymentMethod   `json:"method"`
	Source    Account         `json:"source"`
	Recipient string          `json:"recipient"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	Note      string          `json:"note,omitempty"`
}

func (PaymentAction) action()          {}
func (PaymentAction) Type() ActionType { return ActionPayment }

func (a PaymentAction) Leg() Leg {
	return Leg{Direction: Debit, Account: a.Source, Amount: a.Amount.Add(a.Fee)}
}

func (a PaymentAction) Draft() (*Transaction, error) {
	desc := fmt.Sprintf("Payment via %s", strings.ToUpper(string(a.Method)))
	return draft(TransactionTypePayment, a.Amount, a.Fee, "USD", desc, a.Recipient, map[string]any{
		"method": a.Method,
		"source": a.Source,
		"note":   a.Note,
	})
}

func (a PaymentAction) Prompt() Prompt {
	return Prompt{
		Title:       "Confirm Payment",
		Description: fmt.Sprintf("Send %s to %s", usd(a.Amount), a.Recipient),
		Amount:      a.Amount,
		Fee:         a.Fee,
	}
}

type RechargeCategory string

const (
	RechargeMobile RechargeCategory = "mobile"
	RechargeDTH    RechargeCategory = "dth"
	RechargeGaming RechargeCategory = "gaming"
)

func (c RechargeCategory) Valid() bool {
	switch c {
	case RechargeMobile, RechargeDTH, RechargeGaming:
		return true
	}

	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

type RechargeAction struct {
	Category RechargeCategory `json:"category"`
	Operator Operator         `json:"operator"`
	Number   string           `json:"number"`
	Amount   decimal.Decimal  `json:"amount"`
	Fee      decimal.Decimal  `json:"fee"`
}

func (RechargeAction) action()          {}
func (RechargeAction) Type() ActionType { return ActionRecharge }

func (a RechargeAction) Leg() Leg {
	return Leg{Direction: Debit, Account: AccountBank, Amount: a.Amount.Add(a.Fee)}
}

func (a RechargeAction) Draft() (*Transaction, error) {
	desc := fmt.Sprintf("%s Recharge - %s", capitalize(string(a.Category)), a.Operator.Name)
	return draft(TransactionTypeRecharge, a.Amount, a.Fee, "USD", desc, a.Number, map[string]any{
		"operator": a.Operator.ID,
		"type":     a.Category,
	})
}

func (a RechargeAction) Prompt() Prompt {
	return Prompt{
		Title:       "Confirm Recharge",
		Description: fmt.Sprintf("Recharge %s for %s", a.Operator.Name, a.Number),
		Amount:      a.Amount,
		Fee:         a.Fee,
	}
}

type TicketKind string

const (
	TicketFlight TicketKind = "flight"
	TicketTrain  TicketKind = "train"
	TicketBus    TicketKind = "bus"
	TicketEvents TicketKind = "events"
)

func (k TicketKind) Valid() bool {
	switch k {
	case TicketFlight, TicketTrain, TicketBus, TicketEvents:
		return true
	}

	return false
}

type TicketAction struct {
	Kind    TicketKind      `json:"kind"`
	Listing TicketListing   `json:"listing"`
	Date    string          `json:"date,omitempty"`
	Fee     decimal.Decimal `json:"fee"`
}

func (TicketAction) action()          {}
func (TicketAction) Type() ActionType { return ActionTicket }

func (a TicketAction) Leg() Leg {
	return Leg{Direction: Debit, Account: AccountBank, Amount: a.Listing.Price.Add(a.Fee)}
}

func (a TicketAction) description() string {
	if a.Kind == TicketEvents {
		return "Event Ticket - " + a.Listing.Title
	}

	return fmt.Sprintf("%s Booking - %s", capitalize(string(a.Kind)), a.Listing.Title)
}

func (a TicketAction) Draft() (*Transaction, error) {
	return draft(TransactionTypeTicket, a.Listing.Price, a.Fee, "USD", a.description(), a.Listing.Title, map[string]any{
		"type":        a.Kind,
		"item":        a.Listing.ID,
		"bookingDate": a.Date,
	})
}

func (a TicketAction) Prompt() Prompt {
	return Prompt{
		Title:       "Confirm Booking",
		Description: a.description(),
		Amount:      a.Listing.Price,
		Fee:         a.Fee,
	}
}

type ConvertAction struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Converted decimal.Decimal `json:"converted"`
	Fee       decimal.Decimal `json:"fee"`
}

func (ConvertAction) action()          {}
func (ConvertAction) Type() ActionType { return ActionConvert }

func (a ConvertAction) Leg() Leg {
	return Leg{Direction: Debit, Account: AccountBank, Amount: a.Amount.Add(a.Fee)}
}

func (a ConvertAction) Draft() (*Transaction, error) {
	desc := fmt.Sprintf("%s to %s Conversion", a.From, a.To)
	return draft(TransactionTypeConvert, a.Amount, a.Fee, a.From, desc, "", map[string]any{
		"fromCurrency":    a.From,
		"toCurrency":      a.To,
		"convertedAmount": a.Converted.StringFixed(6),
	})
}

func (a ConvertAction) Prompt() Prompt {
	return Prompt{
		Title:       "Confirm Conversion",
		Description: fmt.Sprintf("Convert %s %s to %s %s", a.Amount.String(), a.From, a.Converted.StringFixed(6), a.To),
		Amount:      a.Amount,
		Fee:         a.Fee,
	}
}

type TradeSide string

const (
	TradeBuy  TradeSide = "buy"
	TradeSell TradeSide = "sell"
)

type OptionKind string

const (
	OptionCall OptionKind = "call"
	OptionPut  OptionKind = "put"
)

// ContractSize is the number of shares per option contract.
const ContractSize = 100

type OptionOrder struct {
	Kind      OptionKind      `json:"kind"`
	Strike    decimal.Decimal `json:"strike"`
	Expiry    string          `json:"expiry"`
	Premium   decimal.Decimal `json:"premium"`
	Contracts int64           `json:"contracts"`
}

type TradeAction struct {
	Side     TradeSide       `json:"side"`
	Market   Market          `json:"market"`
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Fee      decimal.Decimal `json:"fee"`
	Option   *OptionOrder    `json:"option,omitempty"`
}

func (TradeAction) action()          {}
func (TradeAction) Type() ActionType { return ActionTrade }

// Total is the notional of the order before fees.
func (a TradeAction) Total() decimal.Decimal {
	if a.Option != nil {
		return a.Option.Premium.Mul(decimal.NewFromInt(ContractSize * a.Option.Contracts))
	}

	return a.Price.Mul(a.Quantity)
}

func (a TradeAction) Leg() Leg {
	if a.Side == TradeSell {
		return Leg{Direction: Credit, Account: AccountStocks, Amount: a.Total().Sub(a.Fee)}
	}

	return Leg{Direction: Debit, Account: AccountStocks, Amount: a.Total().Add(a.Fee)}
}

func (a TradeAction) description() string {
	verb := "Bought"
	if a.Side == TradeSell {
		verb = "Sold"
	}

	if o := a.Option; o != nil {
		return fmt.Sprintf("%s %s option %s $%s %s", verb, strings.ToUpper(string(o.Kind)), a.Symbol, o.Strike.String(), o.Expiry)
	}

	return fmt.Sprintf("%s %s", verb, a.Symbol)
}

func (a TradeAction) Draft() (*Transaction, error) {
	details := map[string]any{
		"side":     a.Side,
		"market":   a.Market,
		"symbol":   a.Symbol,
		"quantity": a.Quantity,
		"price":    a.Price,
	}

	if a.Option != nil {
		details["option"] = a.Option
	}

	return draft(TransactionTypeTrade, a.Total(), a.Fee, "USD", a.description(), "", details)
}

func (a TradeAction) Prompt() Prompt {
	return Prompt{
		Title:       "Confirm Trade",
		Description: a.description(),
		Amount:      a.Total(),
		Fee:         a.Fee,
	}
}

const PremiumRecipient = "AlgoPayX Premium Services"

type PremiumAction struct {
	Plan  string          `json:"plan"`
	Price decimal.Decimal `json:"price"`
}

func (PremiumAction) action()          {}
func (PremiumAction) Type() ActionType { return ActionPremium }

func (a PremiumAction) Leg() Leg {
	return Leg{Direction: Debit, Account: AccountBank, Amount: a.Price}
}

func (a PremiumAction) Draft() (*Transaction, error) {
	return draft(TransactionTypePayment, a.Price, decimal.Zero, "USD", "Premium Subscription - "+a.Plan, PremiumRecipient, map[string]any{
		"subscriptionType": a.Plan,
		"billingPeriod":    "monthly",
	})
}

func (a PremiumAction) Prompt() Prompt {
	return Prompt{
		Title:       "Upgrade to " + a.Plan,
		Description: fmt.Sprintf("Subscribe to %s for %s/month", a.Plan, usd(a.Price)),
		Amount:      a.Price,
		Fee:         decimal.Zero,
	}
}
