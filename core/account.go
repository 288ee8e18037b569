package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

type Account string

const (
	AccountBank   Account = "bank"
	AccountAlgo   Account = "algo"
	AccountUSDC   Account = "usdc"
	AccountStocks Account = "stocks"
)

func (a Account) Valid() bool {
	switch a {
	case AccountBank, AccountAlgo, AccountUSDC, AccountStocks:
		return true
	}

	return false
}

type Direction string

const (
	Debit  Direction = "debit"
	Credit Direction = "credit"
)

// Leg is a single balance mutation on one account.
type Leg struct {
	Direction Direction       `json:"direction"`
	Account   Account         `json:"account"`
	Amount    decimal.Decimal `json:"amount"`
}

type Balance struct {
	Bank   decimal.Decimal `json:"bank"`
	Algo   decimal.Decimal `json:"algo"`
	USDC   decimal.Decimal `json:"usdc"`
	Stocks decimal.Decimal `json:"stocks"`
}

func DefaultBalance() Balance {
	return Balance{
		Bank:   decimal.RequireFromString("25430.50"),
		Algo:   decimal.RequireFromString("1250.75"),
		USDC:   decimal.RequireFromString("5000.00"),
		Stocks: decimal.RequireFromString("12500.25"),
	}
}

func (b *Balance) field(account Account) (*decimal.Decimal, error) {
	switch account {
	case AccountBank:
		return &b.Bank, nil
	case AccountAlgo:
		return &b.Algo, nil
	case AccountUSDC:
		return &b.USDC, nil
	case AccountStocks:
		return &b.Stocks, nil
	default:
		return nil, fmt.Errorf("%w: unknown account %q", ErrInvalidInput, account)
	}
}

func (b Balance) Of(account Account) decimal.Decimal {
	v, err := b.field(account)
	if err != nil {
		return decimal.Zero
	}

	return *v
}

// Apply mutates the balance by leg. Debits clamp at zero.
func (b *Balance) Apply(leg Leg) error {
	v, err := b.field(leg.Account)
	if err != nil {
		return err
	}

	switch leg.Direction {
	case Debit:
		*v = decimal.Max(decimal.Zero, v.Sub(leg.Amount))
	case Credit:
		*v = v.Add(leg.Amount)
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, leg.Direction)
	}

	return nil
}

//go:generate mockgen -source=account.go -destination=mocks/account.go -package=mocks

type Ledger interface {
	Balance(ctx context.Context) (*Balance, error)
	Update(ctx context.Context, leg Leg) (*Balance, error)
}
