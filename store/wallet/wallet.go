package wallet

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
)

type Config struct {
	// Secret derives the key sealing signer sessions at rest
	Secret string `valid:"required"`
}

// cacheTTL bounds how long another process may see a wallet that was
// disconnected here.
const cacheTTL = 30 * time.Second

type record struct {
	Wallet  *core.Wallet `json:"wallet"`
	Session string       `json:"session"`
}

func New(properties core.PropertyStore, cfg Config) core.WalletStore {
	wallets := expirable.NewLRU[string, *core.Wallet](8, nil, cacheTTL)
	key := sha256.Sum256([]byte(cfg.Secret))
	return &walletStore{
		properties: properties,
		wallets:    wallets,
		key:        key[:],
	}
}

type walletStore struct {
	properties core.PropertyStore
	wallets    *expirable.LRU[string, *core.Wallet]
	key        []byte
}

func (s *walletStore) Save(ctx context.Context, wallet *core.Wallet) error {
	session, err := encrypt(s.key, wallet.Session)
	if err != nil {
		return fmt.Errorf("encrypt session: %w", err)
	}

	if err := s.properties.Set(ctx, store.KeyWallet, record{Wallet: wallet, Session: session}); err != nil {
		return err
	}

	s.wallets.Add(store.KeyWallet, wallet)
	return nil
}

func (s *walletStore) Find(ctx context.Context) (*core.Wallet, error) {
	if w, ok := s.wallets.Get(store.KeyWallet); ok {
		return w, nil
	}

	w, err := s.find(ctx)
	if err != nil || w == nil {
		return nil, err
	}

	s.wallets.Add(store.KeyWallet, w)
	return w, nil
}

func (s *walletStore) find(ctx context.Context) (*core.Wallet, error) {
	var r record
	if err := s.properties.Get(ctx, store.KeyWallet, &r); err != nil {
		return nil, err
	}

	if r.Wallet == nil {
		return nil, nil
	}

	session, err := decrypt(s.key, r.Session)
	if err != nil {
		return nil, fmt.Errorf("decrypt session: %w", err)
	}

	r.Wallet.Session = session
	return r.Wallet, nil
}

func (s *walletStore) Delete(ctx context.Context) error {
	s.wallets.Remove(store.KeyWallet)
	return s.properties.Remove(ctx, store.KeyWallet)
}
