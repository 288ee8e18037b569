package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/wire"
	"github.com/pandodao/algopayx/handler/api"
	"github.com/pandodao/algopayx/handler/hc"
	"github.com/rs/cors"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
)

var serverSet = wire.NewSet(
	provideAPIConfig,
	api.New,
	provideServer,
)

func provideAPIConfig(v *viper.Viper) api.Config {
	def := api.DefaultConfig()
	v.SetDefault("api.token_ttl", def.TokenTTL)
	v.SetDefault("algorand.network", def.Network)

	return api.Config{
		Secret:   v.GetString("api.secret"),
		TokenTTL: v.GetDuration("api.token_ttl"),
		Network:  v.GetString("algorand.network"),
	}
}

func provideServer(apiHandler *api.Server, conn *nap.DB) *http.Server {
	m := chi.NewMux()
	m.Use(middleware.RealIP)
	m.Use(middleware.Logger)
	m.Use(middleware.Recoverer)
	m.Use(cors.AllowAll().Handler)

	m.Mount("/api", apiHandler.Handler())
	m.Mount("/hc", hc.Handler(version, conn.Master()))

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", opt.port),
		Handler: m,
	}
}
