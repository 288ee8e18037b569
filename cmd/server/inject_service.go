package main

import (
	"reflect"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/algorand"
	"github.com/pandodao/algopayx/service/checkout"
	"github.com/pandodao/algopayx/service/gate"
	"github.com/pandodao/algopayx/service/notify"
	"github.com/pandodao/algopayx/service/pricing"
	"github.com/pandodao/algopayx/service/session"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

var serviceSet = wire.NewSet(
	providePricingConfig,
	pricing.New,
	provideNotifyConfig,
	notify.New,
	wire.Bind(new(core.Notifier), new(*notify.Service)),
	provideGateConfig,
	gate.New,
	wire.Bind(new(checkout.Authorizer), new(*gate.Gate)),
	checkout.New,
	wire.Bind(new(session.Guard), new(*gate.Gate)),
	session.New,
	provideAlgorandConfig,
	algorand.New,
	wire.Bind(new(core.WalletBridge), new(*algorand.Bridge)),
)

// decimalHook decodes yaml strings and numbers into decimal.Decimal.
func decimalHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return decimal.NewFromString(v)
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return data, nil
	}
}

// providePricingConfig overlays the pricing section of the config file on
// the built in tables.
func providePricingConfig(v *viper.Viper) (pricing.Config, error) {
	cfg := pricing.DefaultConfig()
	if !v.IsSet("pricing") {
		return cfg, nil
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		decimalHook,
		mapstructure.StringToTimeDurationHookFunc(),
	))

	if err := v.UnmarshalKey("pricing", &cfg, hook); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func provideNotifyConfig(v *viper.Viper) notify.Config {
	def := notify.DefaultConfig()
	v.SetDefault("notify.ttl", def.TTL)
	v.SetDefault("notify.capacity", def.Capacity)

	return notify.Config{
		TTL:      v.GetDuration("notify.ttl"),
		Capacity: v.GetInt("notify.capacity"),
	}
}

func provideGateConfig(v *viper.Viper) gate.Config {
	def := gate.DefaultConfig()
	v.SetDefault("gate.pin_length", def.PinLength)
	v.SetDefault("gate.max_attempts", def.MaxAttempts)
	v.SetDefault("gate.lock_seconds", def.LockSeconds)

	return gate.Config{
		PinLength:   v.GetInt("gate.pin_length"),
		MaxAttempts: v.GetInt("gate.max_attempts"),
		LockSeconds: v.GetInt("gate.lock_seconds"),
	}
}

func provideAlgorandConfig(v *viper.Viper) algorand.Config {
	def := algorand.DefaultConfig()
	v.SetDefault("algorand.network", def.Network)
	v.SetDefault("algorand.algod_url", def.AlgodURL)
	v.SetDefault("algorand.indexer_url", def.IndexerURL)
	v.SetDefault("algorand.timeout", def.Timeout)
	v.SetDefault("algorand.rate_limit", def.RateLimit)
	v.SetDefault("algorand.confirm_rounds", def.ConfirmRounds)
	v.SetDefault("algorand.round_interval", def.RoundInterval)

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
