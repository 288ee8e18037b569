package txlog

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pandodao/algopayx/core"
)

var scanColumns = []string{"id", "created_at", "type", "status", "amount", "currency", "description", "recipient", "tx_date", "tx_time", "fee", "reference", "details"}

func scanTransaction(scanner sq.RowScanner, t *core.Transaction) error {
	var details []byte
	if err := scanner.Scan(
		&t.ID,
		&t.CreatedAt,
		&t.Type,
		&t.Status,
		&t.Amount,
		&t.Currency,
		&t.Description,
		&t.Recipient,
		&t.Date,
		&t.Time,
		&t.Fee,
		&t.Reference,
		&details,
	); err != nil {
		return err
	}

	if len(details) > 0 {
		t.Details = details
	}

	return nil
}
