package main

import (
	"github.com/google/wire"
	"github.com/pandodao/algopayx/store/credential"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/ledger"
	"github.com/pandodao/algopayx/store/property"
	"github.com/pandodao/algopayx/store/txlog"
	"github.com/pandodao/algopayx/store/user"
	"github.com/pandodao/algopayx/store/wallet"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var storeSet = wire.NewSet(
	provideDialect,
	provideDB,
	property.New,
	user.New,
	provideCredentialConfig,
	credential.New,
	ledger.New,
	ledger.NewBook,
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

	dsn := v.GetString("db.dsn")
	for _, replica := range v.GetStringSlice("db.replicas") {
		dsn += ";" + replica
	}

	conn, err := db.Open(dialect, dsn)
	if err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}

func provideCredentialConfig(v *viper.Viper) credential.Config {
	return credential.Config{
		Cost: v.GetInt("credential.bcrypt_cost"),
	}
}

func provideWalletConfig(v *viper.Viper) wallet.Config {
	return wallet.Config{
		Secret: v.GetString("wallet.secret"),
	}
}
