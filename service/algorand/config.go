package algorand

import (
	"time"

	"github.com/pandodao/algopayx/core"
)

type Config struct {
	Network      string `valid:"in(mainnet|testnet),required"`
	AlgodURL     string `valid:"required"`
	AlgodToken   string
	IndexerURL   string `valid:"required"`
	IndexerToken string
	Timeout      time.Duration
	// RateLimit caps node requests per second
	RateLimit float64
	// ConfirmRounds bounds how many rounds a submitted transaction is polled
	ConfirmRounds int
	RoundInterval time.Duration
	// Signers maps a wallet kind to its remote signer endpoint
	Signers map[core.WalletKind]string
}

func DefaultConfig() Config {
	return Config{
		Network:       "testnet",
		AlgodURL:      "https://testnet-api.algonode.cloud",
		IndexerURL:    "https://testnet-idx.algonode.cloud",
		Timeout:       10 * time.Second,
		RateLimit:     10,
		ConfirmRounds: 10,
		RoundInterval: 3 * time.Second,
	}
}

// Common assets by network. Zero is the native ALGO.
var commonAssets = map[string]map[string]uint64{
	"mainnet": {"ALGO": 0, "USDC": 31566704, "USDT": 312769},
	"testnet": {"ALGO": 0, "USDC": 10458941, "USDT": 21582668},
}

// CommonAssets returns the well known asset ids of the network.
func CommonAssets(network string) map[string]uint64 {
	return commonAssets[network]
}
