package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/core/mocks"
	"github.com/pandodao/algopayx/service/checkout"
	"github.com/pandodao/algopayx/service/gate"
	"github.com/pandodao/algopayx/service/notify"
	"github.com/pandodao/algopayx/service/pricing"
	"github.com/pandodao/algopayx/service/session"
	"github.com/pandodao/algopayx/store/credential"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/ledger"
	"github.com/pandodao/algopayx/store/property"
	"github.com/pandodao/algopayx/store/txlog"
	"github.com/pandodao/algopayx/store/user"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type client struct {
	t      *testing.T
	srv    *httptest.Server
	token  string
	toasts *notify.Service
}

func newClient(t *testing.T) *client {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	ctrl := gomock.NewController(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	properties := property.New(conn, db.SQLite)
	users := user.New(properties, logger)
	creds := credential.New(properties, logger, credential.Config{Cost: bcrypt.MinCost})
	balances := ledger.New(properties, logger)
	book := ledger.NewBook(conn, db.SQLite, logger)
	txs := txlog.New(conn, db.SQLite)
	prices := pricing.New(pricing.DefaultConfig())
	bridge := mocks.NewMockWalletBridge(ctrl)

	toasts := notify.New(logger, notify.DefaultConfig())
	g := gate.New(creds, users, toasts, logger, gate.DefaultConfig())

	cfg := DefaultConfig()
	cfg.Secret = "test-secret"

	s := New(
		session.New(users, creds, bridge, g, toasts, logger),
		checkout.New(users, balances, book, prices, g, toasts, logger),
		g,
		toasts,
		prices,
		balances,
		txs,
		users,
		properties,
		bridge,
		logger,
		cfg,
	)

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	return &client{t: t, srv: srv, toasts: toasts}
}

// do sends body as json and decodes the response into out when it is not nil.
func (c *client) do(method, path string, body, out any) int {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("json.Marshal() error = %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.srv.URL+path, r)
	if err != nil {
		c.t.Fatalf("http.NewRequest() error = %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.srv.Client().Do(req)
	if err != nil {
		c.t.Fatalf("%s %s error = %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.t.Fatalf("%s %s decode error = %v", method, path, err)
		}
	}

	return resp.StatusCode
}

func (c *client) signUp() {
	c.t.Helper()

	var resp sessionResponse
	code := c.do(http.MethodPost, "/auth/signup", session.SignUpRequest{
		Email:           "alice@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Pin:             "246810",
		ConfirmPin:      "246810",
	}, &resp)
	if code != http.StatusCreated {
		c.t.Fatalf("signup status = %d, want %d", code, http.StatusCreated)
	}

	if resp.Token == "" || !resp.User.Connected {
		c.t.Fatalf("signup response = %+v, want a token for a connected user", resp)
	}

	c.token = resp.Token
}

func (c *client) expectError(method, path string, body any, status int, code string) {
	c.t.Helper()

	var resp errorResponse
	if got := c.do(method, path, body, &resp); got != status {
		c.t.Errorf("%s %s status = %d, want %d", method, path, got, status)
	}

	if resp.Code != code {
		c.t.Errorf("%s %s code = %q, want %q", method, path, resp.Code, code)
	}
}

func TestAuth(t *testing.T) {
	c := newClient(t)

	if code := c.do(http.MethodGet, "/me", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("GET /me without token = %d, want %d", code, http.StatusUnauthorized)
	}

	c.expectError(http.MethodPost, "/auth/signin", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter22",
	}, http.StatusUnauthorized, "invalid_credentials")

	c.expectError(http.MethodPost, "/auth/signup", session.SignUpRequest{
		Email:           "not-an-email",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Pin:             "246810",
		ConfirmPin:      "246810",
	}, http.StatusBadRequest, "invalid_input")

	c.signUp()

	var me core.User
	if code := c.do(http.MethodGet, "/me", nil, &me); code != http.StatusOK {
		t.Fatalf("GET /me = %d, want %d", code, http.StatusOK)
	}

	if me.Email != "alice@example.com" {
		t.Errorf("GET /me email = %q, want alice@example.com", me.Email)
	}

	if code := c.do(http.MethodPost, "/auth/logout", nil, nil); code != http.StatusNoContent {
		t.Fatalf("POST /auth/logout = %d, want %d", code, http.StatusNoContent)
	}

	// the token is still valid but the user is signed out
	if code := c.do(http.MethodGet, "/me", nil, nil); code != http.StatusUnauthorized {
		t.Errorf("GET /me after logout = %d, want %d", code, http.StatusUnauthorized)
	}

	var resp sessionResponse
	if code := c.do(http.MethodPost, "/auth/signin", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter22",
	}, &resp); code != http.StatusOK {
		t.Fatalf("POST /auth/signin = %d, want %d", code, http.StatusOK)
	}

	if resp.Token == "" {
		t.Error("POST /auth/signin returned no token")
	}
}

func TestPaymentFlow(t *testing.T) {
	c := newClient(t)
	c.signUp()

	var staged struct {
		Prompt *core.Prompt `json:"prompt"`
		Gate   gate.Status  `json:"gate"`
	}

	if code := c.do(http.MethodPost, "/actions/payment", map[string]string{
		"method":    "bank",
		"source":    "bank",
		"recipient": "bob@example.com",
		"amount":    "100",
	}, &staged); code != http.StatusOK {
		t.Fatalf("POST /actions/payment = %d, want %d", code, http.StatusOK)
	}

	if staged.Prompt == nil || !staged.Prompt.Fee.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("staged prompt = %+v, want fee 1", staged.Prompt)
	}

	if !staged.Gate.Open || staged.Gate.State != gate.StateIdle {
		t.Errorf("gate after staging = %+v, want open and idle", staged.Gate)
	}

	var status gate.Status
	c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "2468"}, &status)
	if status.State != gate.StateEntering || status.Digits != 4 {
		t.Errorf("gate after 4 digits = %+v, want entering with 4 digits", status)
	}

	c.expectError(http.MethodPost, "/gate/submit", nil, http.StatusBadRequest, "pin_incomplete")

	c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "10"}, &status)
	if status.State != gate.StateReady {
		t.Errorf("gate after 6 digits = %+v, want ready", status)
	}

	var receipt checkout.Receipt
	if code := c.do(http.MethodPost, "/gate/submit", nil, &receipt); code != http.StatusOK {
		t.Fatalf("POST /gate/submit = %d, want %d", code, http.StatusOK)
	}

	if want := decimal.RequireFromString("25329.50"); !receipt.Balance.Bank.Equal(want) {
		t.Errorf("bank balance = %s, want %s", receipt.Balance.Bank, want)
	}

	if !strings.HasPrefix(receipt.Transaction.Reference, "PAY-") {
		t.Errorf("reference = %q, want PAY- prefix", receipt.Transaction.Reference)
	}

	var txs []*core.Transaction
	if code := c.do(http.MethodGet, "/transactions?type=payment", nil, &txs); code != http.StatusOK {
		t.Fatalf("GET /transactions = %d, want %d", code, http.StatusOK)
	}

	if len(txs) != 2 || txs[0].ID != receipt.Transaction.ID {
		t.Errorf("payments = %d records, first %+v, want the new payment first of 2", len(txs), txs[0])
	}

	var summary core.TransactionSummary
	c.do(http.MethodGet, "/transactions/summary?q=bob", nil, &summary)
	if summary.Count != 1 || !summary.Fees.Equal(decimal.NewFromInt(1)) {
		t.Errorf("summary = %+v, want 1 record with fee 1", summary)
	}

	c.expectError(http.MethodGet, "/transactions?type=refund", nil, http.StatusBadRequest, "invalid_input")
	c.expectError(http.MethodPost, "/gate/submit", nil, http.StatusConflict, "gate_closed")
}

func TestInsufficientFunds(t *testing.T) {
	c := newClient(t)
	c.signUp()

	c.expectError(http.MethodPost, "/actions/payment", map[string]string{
		"method":    "bank",
		"source":    "usdc",
		"recipient": "bob@example.com",
		"amount":    "5000",
	}, http.StatusUnprocessableEntity, "insufficient_funds")

	var status gate.Status
	c.do(http.MethodGet, "/gate", nil, &status)
	if status.Open {
		t.Error("gate opened for a rejected action")
	}
}

func TestLockout(t *testing.T) {
	c := newClient(t)
	c.signUp()

	if code := c.do(http.MethodPost, "/actions/ticket", map[string]string{
		"kind":    "bus",
		"item_id": "1",
	}, nil); code != http.StatusOK {
		t.Fatalf("POST /actions/ticket = %d, want %d", code, http.StatusOK)
	}

	for i := 1; i < 5; i++ {
		c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "000000"}, nil)
		c.expectError(http.MethodPost, "/gate/submit", nil, http.StatusForbidden, "incorrect_pin")
	}

	c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "000000"}, nil)
	c.expectError(http.MethodPost, "/gate/submit", nil, http.StatusLocked, "account_locked")

	var status gate.Status
	c.do(http.MethodGet, "/gate", nil, &status)
	if status.State != gate.StateLocked || status.LockRemaining != 300 {
		t.Errorf("gate = %+v, want locked for 300 seconds", status)
	}

	c.expectError(http.MethodPost, "/actions/convert", map[string]string{
		"from":   "USD",
		"to":     "EUR",
		"amount": "10",
	}, http.StatusLocked, "gate_locked")

	var me core.User
	c.do(http.MethodGet, "/me", nil, &me)
	if !me.AccountLocked {
		t.Error("user not flagged as locked")
	}

	var balance core.Balance
	c.do(http.MethodGet, "/balance", nil, &balance)
	if want := core.DefaultBalance(); !balance.Bank.Equal(want.Bank) {
		t.Errorf("bank balance = %s, want untouched %s", balance.Bank, want.Bank)
	}
}

func (c *client) relogin() {
	c.t.Helper()

	if code := c.do(http.MethodPost, "/auth/logout", nil, nil); code != http.StatusNoContent {
		c.t.Fatalf("POST /auth/logout = %d, want %d", code, http.StatusNoContent)
	}

	var resp sessionResponse
	if code := c.do(http.MethodPost, "/auth/signin", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter22",
	}, &resp); code != http.StatusOK {
		c.t.Fatalf("POST /auth/signin = %d, want %d", code, http.StatusOK)
	}

	c.token = resp.Token
}

func TestLogoutDropsPendingAction(t *testing.T) {
	c := newClient(t)
	c.signUp()

	if code := c.do(http.MethodPost, "/actions/payment", map[string]string{
		"method":    "bank",
		"source":    "bank",
		"recipient": "bob@example.com",
		"amount":    "100",
	}, nil); code != http.StatusOK {
		t.Fatalf("POST /actions/payment = %d, want %d", code, http.StatusOK)
	}

	c.relogin()

	var status gate.Status
	c.do(http.MethodGet, "/gate", nil, &status)
	if status.Open || status.Prompt != nil {
		t.Errorf("gate after logout = %+v, want closed", status)
	}

	c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "246810"}, nil)
	c.expectError(http.MethodPost, "/gate/submit", nil, http.StatusConflict, "gate_closed")

	var txs []*core.Transaction
	c.do(http.MethodGet, "/transactions?q=bob", nil, &txs)
	if len(txs) != 0 {
		t.Errorf("transactions for bob = %d, want none committed", len(txs))
	}
}

func TestLockSurvivesLogout(t *testing.T) {
	c := newClient(t)
	c.signUp()

	c.do(http.MethodPost, "/actions/ticket", map[string]string{"kind": "bus", "item_id": "1"}, nil)
	for i := 0; i < 5; i++ {
		c.do(http.MethodPost, "/gate/input", map[string]string{"digits": "000000"}, nil)
		c.do(http.MethodPost, "/gate/submit", nil, nil)
	}

	c.relogin()

	var status gate.Status
	c.do(http.MethodGet, "/gate", nil, &status)
	if status.State != gate.StateLocked {
		t.Fatalf("gate after logout = %+v, want locked", status)
	}

	var me core.User
	c.do(http.MethodGet, "/me", nil, &me)
	if !me.AccountLocked {
		t.Error("user signed back in during a lock is not flagged as locked")
	}
}

func TestCatalog(t *testing.T) {
	c := newClient(t)

	var operators []core.Operator
	if code := c.do(http.MethodGet, "/catalog/operators/dth", nil, &operators); code != http.StatusOK {
		t.Fatalf("GET /catalog/operators/dth = %d, want %d", code, http.StatusOK)
	}

	if len(operators) != 4 {
		t.Errorf("dth operators = %d, want 4", len(operators))
	}

	c.expectError(http.MethodGet, "/catalog/operators/cable", nil, http.StatusBadRequest, "invalid_input")
	c.expectError(http.MethodGet, "/catalog/tickets/ferry", nil, http.StatusBadRequest, "invalid_input")
	c.expectError(http.MethodGet, "/catalog/options/ZZZZ", nil, http.StatusNotFound, "not_found")

	var chain core.OptionChain
	if code := c.do(http.MethodGet, "/catalog/options/aapl", nil, &chain); code != http.StatusOK {
		t.Fatalf("GET /catalog/options/aapl = %d, want %d", code, http.StatusOK)
	}

	if chain.Symbol != "AAPL" || len(chain.Quotes) != 5 {
		t.Errorf("option chain = %+v, want AAPL with 5 quotes", chain)
	}

	var currencies []core.Currency
	c.do(http.MethodGet, "/catalog/currencies", nil, &currencies)
	if len(currencies) != 36 {
		t.Errorf("currencies = %d, want 36", len(currencies))
	}
}

func TestToasts(t *testing.T) {
	c := newClient(t)
	c.signUp()

	var toasts []core.Toast
	c.do(http.MethodGet, "/toasts", nil, &toasts)
	if len(toasts) != 1 || toasts[0].Message != "Account created successfully!" {
		t.Fatalf("toasts = %+v, want the signup toast", toasts)
	}

	path := "/toasts/" + toasts[0].ID
	if code := c.do(http.MethodDelete, path, nil, nil); code != http.StatusNoContent {
		t.Errorf("DELETE %s = %d, want %d", path, code, http.StatusNoContent)
	}

	c.expectError(http.MethodDelete, path, nil, http.StatusNotFound, "not_found")
}
