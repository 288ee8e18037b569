package main

import (
	"github.com/google/wire"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/algorand"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	provideAlgorandConfig,
	algorand.New,
	wire.Bind(new(core.WalletBridge), new(*algorand.Bridge)),
)

func provideAlgorandConfig(v *viper.Viper) algorand.Config {
	def := algorand.DefaultConfig()
	v.SetDefault("algorand.network", def.Network)
	v.SetDefault("algorand.algod_url", def.AlgodURL)
	v.SetDefault("algorand.indexer_url", def.IndexerURL)
	v.SetDefault("algorand.timeout", def.Timeout)
	v.SetDefault("algorand.rate_limit", def.RateLimit)

	signers := map[core.WalletKind]string{}
	for kind, endpoint := range v.GetStringMapString("algorand.signers") {
		signers[core.WalletKind(kind)] = endpoint
	}

	return algorand.Config{
		Network:       v.GetString("algorand.network"),
		AlgodURL:      v.GetString("algorand.algod_url"),
		AlgodToken:    v.GetString("algorand.algod_token"),
		IndexerURL:    v.GetString("algorand.indexer_url"),
		IndexerToken:  v.GetString("algorand.indexer_token"),
		Timeout:       v.GetDuration("algorand.timeout"),
		RateLimit:     v.GetFloat64("algorand.rate_limit"),
		ConfirmRounds: v.GetInt("algorand.confirm_rounds"),
		RoundInterval: v.GetDuration("algorand.round_interval"),
		Signers:       signers,
	}
}
