package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/checkout"
	"github.com/pandodao/algopayx/service/gate"
	"github.com/pandodao/algopayx/service/notify"
	"github.com/pandodao/algopayx/service/session"
)

type Config struct {
	Secret   string        `valid:"required"`
	TokenTTL time.Duration `valid:"required"`
	Network  string        `valid:"in(mainnet|testnet),required"`
}

func DefaultConfig() Config {
	return Config{
		TokenTTL: 24 * time.Hour,
		Network:  "testnet",
	}
}

func New(
	session *session.Service,
	checkout *checkout.Service,
	gate *gate.Gate,
	toasts *notify.Service,
	pricing core.Pricing,
	ledger core.Ledger,
	txlog core.TransactionLog,
	users core.UserStore,
	properties core.PropertyStore,
	bridge core.WalletBridge,
	logger *slog.Logger,
	cfg Config,
) *Server {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Server{
		session:    session,
		checkout:   checkout,
		gate:       gate,
		toasts:     toasts,
		pricing:    pricing,
		ledger:     ledger,
		txlog:      txlog,
		users:      users,
		properties: properties,
		bridge:     bridge,
		logger:     logger.With("handler", "api"),
		cfg:        cfg,
		auth:       jwtauth.New("HS256", []byte(cfg.Secret), nil),
	}
}

type Server struct {
	session    *session.Service
	checkout   *checkout.Service
	gate       *gate.Gate
	toasts     *notify.Service
	pricing    core.Pricing
	ledger     core.Ledger
	txlog      core.TransactionLog
	users      core.UserStore
	properties core.PropertyStore
	bridge     core.WalletBridge
	logger     *slog.Logger
	cfg        Config
	auth       *jwtauth.JWTAuth
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignUp)
		r.Post("/signin", s.handleSignIn)
	})

	r.Post("/wallet/connect", s.handleConnectWallet)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/currencies", s.handleCurrencies)
		r.Get("/operators/{category}", s.handleOperators)
		r.Get("/plans", s.handleRechargePlans)
		r.Get("/tickets/{kind}", s.handleListings)
		r.Get("/assets/{market}", s.handleTradeAssets)
		r.Get("/options/{symbol}", s.handleOptionChain)
	})

	r.Route("/toasts", func(r chi.Router) {
		r.Get("/", s.handleToasts)
		r.Delete("/{id}", s.handleDismissToast)
	})

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(s.auth))
		r.Use(jwtauth.Authenticator(s.auth))
		r.Use(s.requireConnected)

		r.Get("/me", s.handleMe)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/balance", s.handleBalance)
		r.Get("/convert", s.handleQuote)

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", s.handleTransactions)
			r.Get("/summary", s.handleSummary)
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Post("/disconnect", s.handleDisconnectWallet)
			r.Get("/account", s.handleAccount)
			r.Get("/history", s.handleHistory)
			r.Get("/assets", s.handleCommonAssets)
			r.Post("/payments", s.handleSendPayment)
			r.Post("/transfers", s.handleSendAsset)
			r.Post("/assets/{id}/opt-in", s.handleOptIn)
			r.Post("/swaps", s.handleSwap)
		})

		r.Route("/actions", func(r chi.Router) {
			r.Post("/payment", stageHandler(s, s.checkout.StagePayment))
			r.Post("/recharge", stageHandler(s, s.checkout.StageRecharge))
			r.Post("/ticket", stageHandler(s, s.checkout.StageTicket))
			r.Post("/convert", stageHandler(s, s.checkout.StageConvert))
			r.Post("/trade", stageHandler(s, s.checkout.StageTrade))
			r.Post("/option", stageHandler(s, s.checkout.StageOption))
			r.Post("/premium", stageHandler(s, s.checkout.StagePremium))
		})

		r.Route("/gate", func(r chi.Router) {
			r.Get("/", s.handleGateStatus)
			r.Post("/input", s.handleGateInput)
			r.Post("/backspace", s.handleGateBackspace)
			r.Post("/submit", s.handleGateSubmit)
			r.Post("/cancel", s.handleGateCancel)
		})
	})

	return r
}
