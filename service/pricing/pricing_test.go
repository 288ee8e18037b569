package pricing

import (
	"errors"
	"testing"

	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPaymentFee(t *testing.T) {
	p := New(DefaultConfig())

	type args struct {
		method  core.PaymentMethod
		amount  decimal.Decimal
		premium bool
	}
	tests := []struct {
		name string
		args args
		want decimal.Decimal
	}{
		{name: "bank floor", args: args{core.PaymentMethodBank, newDecimal("100"), false}, want: newDecimal("1.00")},
		{name: "bank percent", args: args{core.PaymentMethodBank, newDecimal("5000"), false}, want: newDecimal("5")},
		{name: "mobile", args: args{core.PaymentMethodMobile, newDecimal("200"), false}, want: newDecimal("1")},
		{name: "qr", args: args{core.PaymentMethodQR, newDecimal("250"), false}, want: newDecimal("0.5")},
		{name: "premium bank", args: args{core.PaymentMethodBank, newDecimal("100"), true}, want: decimal.Zero},
		{name: "premium mobile", args: args{core.PaymentMethodMobile, newDecimal("100"), true}, want: decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.PaymentFee(tt.args.method, tt.args.amount, tt.args.premium)
			if err != nil {
				t.Fatalf("PaymentFee() error = %v", err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("PaymentFee() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := p.PaymentFee("cheque", newDecimal("1"), false); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("PaymentFee() unknown method error = %v, want ErrInvalidInput", err)
	}
}

func TestDomainFees(t *testing.T) {
	p := New(DefaultConfig())

	tests := []struct {
		name string
		got  decimal.Decimal
		want decimal.Decimal
	}{
		{name: "recharge percent", got: p.RechargeFee(newDecimal("25"), false), want: newDecimal("0.5")},
		{name: "recharge cap", got: p.RechargeFee(newDecimal("199"), false), want: newDecimal("1")},
		{name: "flight", got: p.TicketFee(core.TicketFlight, false), want: newDecimal("15")},
		{name: "bus", got: p.TicketFee(core.TicketBus, false), want: newDecimal("15")},
		{name: "events", got: p.TicketFee(core.TicketEvents, false), want: newDecimal("5")},
		{name: "convert", got: p.ConvertFee(false), want: newDecimal("2")},
		{name: "trade small", got: p.TradeFee(newDecimal("999.99"), false), want: newDecimal("5")},
		{name: "trade boundary", got: p.TradeFee(newDecimal("1000"), false), want: newDecimal("6.25")},
		{name: "trade large", got: p.TradeFee(newDecimal("5000"), false), want: newDecimal("7.5")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(tt.want) {
				t.Errorf("fee = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPremiumWaivesEveryFee(t *testing.T) {
	p := New(DefaultConfig())

	for _, amount := range []string{"0.01", "1", "999", "1000", "25000"} {
		a := newDecimal(amount)
		fees := []decimal.Decimal{
			p.RechargeFee(a, true),
			p.TicketFee(core.TicketFlight, true),
			p.TicketFee(core.TicketEvents, true),
			p.ConvertFee(true),
			p.TradeFee(a, true),
		}

		for _, method := range []core.PaymentMethod{core.PaymentMethodBank, core.PaymentMethodMobile, core.PaymentMethodQR} {
			fee, _ := p.PaymentFee(method, a, true)
			fees = append(fees, fee)
		}

		for i, fee := range fees {
			if !fee.IsZero() {
				t.Errorf("amount %s: fee #%d = %s, want 0", amount, i, fee)
			}
		}
	}
}

func TestConvert(t *testing.T) {
	p := New(DefaultConfig())

	tests := []struct {
		name    string
		amount  string
		from    string
		to      string
		want    string
		wantErr bool
	}{
		{name: "usd to algo", amount: "100", from: "USD", to: "ALGO", want: "18.450000"},
		{name: "lower case codes", amount: "100", from: "usd", to: "eur", want: "92.000000"},
		{name: "eur to jpy", amount: "50", from: "EUR", to: "JPY", want: "8111.413043"},
		{name: "usd to btc", amount: "1", from: "USD", to: "BTC", want: "0.000023"},
		{name: "zero amount", amount: "0", from: "USD", to: "EUR", wantErr: true},
		{name: "unknown currency", amount: "1", from: "USD", to: "XYZ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Convert(newDecimal(tt.amount), tt.from, tt.to)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Convert() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				return
			}

			if s := got.StringFixed(ConvertPrecision); s != tt.want {
				t.Errorf("Convert() = %s, want %s", s, tt.want)
			}
		})
	}
}

func TestCatalogs(t *testing.T) {
	p := New(DefaultConfig())

	if got := len(p.Currencies()); got != 36 {
		t.Errorf("Currencies() = %d, want 36", got)
	}

	if got := len(p.Operators(core.RechargeDTH)); got != 4 {
		t.Errorf("Operators(dth) = %d, want 4", got)
	}

	if op, ok := p.Operator(core.RechargeMobile, "Airtel"); !ok || op.ID != "airtel" {
		t.Errorf("Operator(mobile, Airtel) = %+v, %v", op, ok)
	}

	if l, ok := p.Listing(core.TicketTrain, "2"); !ok || l.Title != "Air India" {
		t.Errorf("Listing(train, 2) = %+v, %v", l, ok)
	}

	if _, ok := p.Listing(core.TicketEvents, "9"); ok {
		t.Error("Listing(events, 9) should not exist")
	}

	if a, ok := p.Asset(core.MarketCrypto, "btc"); !ok || !a.Price.Equal(newDecimal("43250")) {
		t.Errorf("Asset(crypto, btc) = %+v, %v", a, ok)
	}

	if c, ok := p.OptionChain("AAPL"); !ok || len(c.Quotes) != 5 {
		t.Errorf("OptionChain(AAPL) = %+v, %v", c, ok)
	}
}

func TestPremiumPlan(t *testing.T) {
	p := New(DefaultConfig())

	tests := []struct {
		name  string
		input string
		plan  string
		price string
		ok    bool
	}{
		{name: "exact", input: "Premium", plan: "Premium", price: "9.99", ok: true},
		{name: "lower case", input: "premium", plan: "Premium", price: "9.99", ok: true},
		{name: "padded", input: " PREMIUM ", plan: "Premium", price: "9.99", ok: true},
		{name: "unknown", input: "gold", price: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, price, ok := p.PremiumPlan(tt.input)
			if ok != tt.ok || plan != tt.plan || !price.Equal(newDecimal(tt.price)) {
				t.Errorf("PremiumPlan(%q) = %q, %s, %v, want %q, %s, %v", tt.input, plan, price, ok, tt.plan, tt.price, tt.ok)
			}
		})
	}
}
