package main

import (
	"github.com/google/wire"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/ledger"
	"github.com/pandodao/algopayx/store/property"
	"github.com/pandodao/algopayx/store/txlog"
	"github.com/pandodao/algopayx/store/wallet"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var storeSet = wire.NewSet(
	provideDialect,
	provideDB,
	property.New,
	ledger.New,
	txlog.New,
	provideWalletConfig,
	wallet.New,
)

func provideDialect(v *viper.Viper) db.Dialect {
	v.SetDefault("db.driver", string(db.SQLite))
	return db.Dialect(v.GetString("db.driver"))
}

func provideDB(v *viper.Viper, dialect db.Dialect) (*nap.DB, func(), error) {
	v.SetDefault("db.dsn", "algopayx.db")

	conn, err := db.Open(dialect, v.GetString("db.dsn"))
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}

func provideWalletConfig(v *viper.Viper) wallet.Config {
	return wallet.Config{
		Secret: v.GetString("wallet.secret"),
	}
}
