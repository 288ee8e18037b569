package algorand

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pandodao/algopayx/core"
)

// signer talks to a remote signer that holds the wallet keys. It opens a
// session, signs and broadcasts intents for that session, and forgets it on
// disconnect.
type signer struct {
	kind   core.WalletKind
	client *resty.Client
}

func newSigner(kind core.WalletKind, endpoint string, timeout time.Duration) core.WalletConnector {
	return &signer{
		kind:   kind,
		client: resty.New().SetBaseURL(endpoint).SetTimeout(timeout),
	}
}

type signerError struct {
	Message string `json:"message"`
}

func (s *signer) post(ctx context.Context, path string, body, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out).
		SetError(&signerError{}).
		Post(path)
	if err != nil {
		return fmt.Errorf("%s signer: %w", s.kind, err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if e, ok := resp.Error().(*signerError); ok && e.Message != "" {
			msg = e.Message
		}

		return fmt.Errorf("%s signer: %s", s.kind, msg)
	}

	return nil
}

func (s *signer) Connect(ctx context.Context) (string, []core.WalletAccount, error) {
	var resp struct {
		Session  string               `json:"session"`
		Accounts []core.WalletAccount `json:"accounts"`
	}

	if err := s.post(ctx, "/connect", map[string]any{"kind": s.kind}, &resp); err != nil {
		return "", nil, err
	}

	return resp.Session, resp.Accounts, nil
}

func (s *signer) Disconnect(ctx context.Context, session string) error {
	return s.post(ctx, "/disconnect", map[string]any{"session": session}, nil)
}

func (s *signer) Submit(ctx context.Context, session string, intent *core.TransferIntent) (string, error) {
	var resp struct {
		TxID string `json:"tx_id"`
	}

	body := map[string]any{
		"session": session,
		"intent":  intent,
	}

	if err := s.post(ctx, "/transactions", body, &resp); err != nil {
		return "", err
	}

	return resp.TxID, nil
}
