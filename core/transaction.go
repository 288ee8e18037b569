package core

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypePayment  TransactionType = "payment"
	TransactionTypeRecharge TransactionType = "recharge"
	TransactionTypeTicket   TransactionType = "ticket"
	TransactionTypeTrade    TransactionType = "trade"
	TransactionTypeConvert  TransactionType = "convert"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypePayment, TransactionTypeRecharge, TransactionTypeTicket, TransactionTypeTrade, TransactionTypeConvert:
		return true
	}

	return false
}

// ReferencePrefix is the first three letters of the type, uppercased.
func (t TransactionType) ReferencePrefix() string {
	s := string(t)
	if len(s) > 3 {
		s = s[:3]
	}

	return strings.ToUpper(s)
}

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Recipient   string            `json:"recipient,omitempty"`
	Date        string            `json:"date"`
	Time        string            `json:"time"`
	Fee         decimal.Decimal   `json:"fee"`
	Reference   string            `json:"reference"`
	Details     json.RawMessage   `json:"details,omitempty"`
}

type TransactionFilter struct {
	Type  TransactionType
	Query string
	Limit int
}

type TransactionSummary struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
	Fees   decimal.Decimal `json:"fees"`
}

//go:generate mockgen -source=transaction.go -destination=mocks/transaction.go -package=mocks

type TransactionLog interface {
	// Append assigns id, reference, date and time to draft and stores it
	Append(ctx context.Context, draft *Transaction) (*Transaction, error)
	// List returns records newest first
	List(ctx context.Context, filter TransactionFilter) ([]*Transaction, error)
	Summary(ctx context.Context, filter TransactionFilter) (*TransactionSummary, error)
}

// Entry is one committed action: a ledger leg, its log record and an
// optional user update, applied together.
type Entry struct {
	Leg   Leg
	Draft *Transaction
	User  *User
}

type Book interface {
	Commit(ctx context.Context, entry Entry) (*Transaction, *Balance, error)
}
