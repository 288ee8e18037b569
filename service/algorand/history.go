package algorand

import (
	"context"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/pandodao/algopayx/core"
)

type transactionsResponse struct {
	NextToken    string `json:"next-token"`
	Transactions []struct {
		ID             string `json:"id"`
		TxType         string `json:"tx-type"`
		Sender         string `json:"sender"`
		Fee            uint64 `json:"fee"`
		ConfirmedRound uint64 `json:"confirmed-round"`
		RoundTime      int64  `json:"round-time"`
		Note           string `json:"note"`
		Payment        *struct {
			Receiver string `json:"receiver"`
			Amount   uint64 `json:"amount"`
		} `json:"payment-transaction"`
		AssetTransfer *struct {
			Receiver string `json:"receiver"`
			Amount   uint64 `json:"amount"`
			AssetID  uint64 `json:"asset-id"`
		} `json:"asset-transfer-transaction"`
	} `json:"transactions"`
}

const historyPageSize = 100

// History lists up to limit transactions of address, newest first, walking
// the indexer pages.
func (b *Bridge) History(ctx context.Context, address string, limit int) ([]*core.ChainTransaction, error) {
	if limit <= 0 {
		limit = historyPageSize
	}

	var (
		txs  []*core.ChainTransaction
		next string
	)

	for len(txs) < limit {
		query := map[string]string{
			"limit": strconv.Itoa(min(limit-len(txs), historyPageSize)),
		}

		if next != "" {
			query["next"] = next
		}

		var resp transactionsResponse
		params := map[string]string{"address": address}
		if err := b.node.get(ctx, b.node.indexer, "/v2/accounts/{address}/transactions", params, query, &resp); err != nil {
			b.logger.Error("indexer.transactions", "address", address, "err", err)
			return nil, err
		}

		for _, t := range resp.Transactions {
			tx := &core.ChainTransaction{
				ID:             t.ID,
				Type:           t.TxType,
				Sender:         t.Sender,
				Fee:            Units(t.Fee, algoDecimals),
				ConfirmedRound: t.ConfirmedRound,
				RoundTime:      time.Unix(t.RoundTime, 0).UTC(),
			}

			if note, err := base64.StdEncoding.DecodeString(t.Note); err == nil {
				tx.Note = string(note)
			}

			switch {
			case t.Payment != nil:
				tx.Receiver = t.Payment.Receiver
				tx.Amount = Units(t.Payment.Amount, algoDecimals)
			case t.AssetTransfer != nil:
				tx.Receiver = t.AssetTransfer.Receiver
				tx.AssetID = t.AssetTransfer.AssetID
				tx.Amount = Units(t.AssetTransfer.Amount, 0)
				if asset, err := b.assets.Find(ctx, tx.AssetID); err == nil {
					tx.Amount = Units(t.AssetTransfer.Amount, asset.Decimals)
				}
			}

			txs = append(txs, tx)
		}

		if resp.NextToken == "" || len(resp.Transactions) == 0 {
			break
		}

		next = resp.NextToken
	}

	return txs, nil
}
