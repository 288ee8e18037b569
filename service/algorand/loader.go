package algorand

import (
	"fmt"
	"sync"

	"github.com/pandodao/algopayx/core"
)

// loader hands out one connector per configured wallet kind.
type loader struct {
	cfg Config

	connectors map[core.WalletKind]core.WalletConnector
	mux        sync.Mutex
}

func newLoader(cfg Config) *loader {
	return &loader{
		cfg:        cfg,
		connectors: map[core.WalletKind]core.WalletConnector{},
	}
}

func (l *loader) register(kind core.WalletKind, c core.WalletConnector) {
	l.mux.Lock()
	l.connectors[kind] = c
	l.mux.Unlock()
}

func (l *loader) load(kind core.WalletKind) (core.WalletConnector, error) {
	l.mux.Lock()
	defer l.mux.Unlock()

	if c, ok := l.connectors[kind]; ok {
		return c, nil
	}

	endpoint, ok := l.cfg.Signers[kind]
	if !ok || endpoint == "" {
		return nil, fmt.Errorf("%w: %s", core.ErrWalletNotSupported, kind)
	}

	c := newSigner(kind, endpoint, l.cfg.Timeout)
	l.connectors[kind] = c
	return c, nil
}
