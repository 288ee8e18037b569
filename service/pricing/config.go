package pricing

import (
	"github.com/pandodao/algopayx/core"
	"github.com/shopspring/decimal"
)

// Fee is flat + amount*rate, clamped to [min, max]. Zero bounds are ignored.
type Fee struct {
	Flat decimal.Decimal `mapstructure:"flat"`
	Rate decimal.Decimal `mapstructure:"rate"`
	Min  decimal.Decimal `mapstructure:"min"`
	Max  decimal.Decimal `mapstructure:"max"`
}

func (f Fee) apply(amount decimal.Decimal) decimal.Decimal {
	fee := f.Flat.Add(amount.Mul(f.Rate))
	if f.Min.IsPositive() {
		fee = decimal.Max(fee, f.Min)
	}

	if f.Max.IsPositive() {
		fee = decimal.Min(fee, f.Max)
	}

	return fee
}

// Tier charges Fee for notionals strictly below Below. A zero Below matches
// everything.
type Tier struct {
	Below decimal.Decimal `mapstructure:"below"`
	Fee   decimal.Decimal `mapstructure:"fee"`
}

type Config struct {
	PaymentFees  map[core.PaymentMethod]Fee `mapstructure:"payment_fees"`
	RechargeFee  Fee                        `mapstructure:"recharge_fee"`
	TicketFees   map[core.TicketKind]Fee    `mapstructure:"ticket_fees"`
	ConvertFee   Fee                        `mapstructure:"convert_fee"`
	TradeTiers   []Tier                     `mapstructure:"trade_tiers"`
	PremiumPlans map[string]decimal.Decimal `mapstructure:"premium_plans"`

	Currencies    []core.Currency      `mapstructure:"currencies"`
	Operators     []core.Operator      `mapstructure:"operators"`
	RechargePlans []decimal.Decimal    `mapstructure:"recharge_plans"`
	Transport     []core.TicketListing `mapstructure:"transport"`
	Events        []core.TicketListing `mapstructure:"events"`
	Assets        []core.TradeAsset    `mapstructure:"assets"`
	OptionChains  []core.OptionChain   `mapstructure:"option_chains"`
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func DefaultConfig() Config {
	transportFee := Fee{Flat: d("15.00")}

	return Config{
		PaymentFees: map[core.PaymentMethod]Fee{
			core.PaymentMethodBank:   {Rate: d("0.001"), Min: d("1.00")},
			core.PaymentMethodMobile: {Rate: d("0.005")},
			core.PaymentMethodQR:     {Rate: d("0.002")},
		},
		RechargeFee: Fee{Rate: d("0.02"), Max: d("1.00")},
		TicketFees: map[core.TicketKind]Fee{
			core.TicketFlight: transportFee,
			core.TicketTrain:  transportFee,
			core.TicketBus:    transportFee,
			core.TicketEvents: {Flat: d("5.00")},
		},
		ConvertFee: Fee{Flat: d("2.00")},
		TradeTiers: []Tier{
			{Below: d("1000"), Fee: d("5.00")},
			{Below: d("5000"), Fee: d("6.25")},
			{Fee: d("7.50")},
		},
		PremiumPlans: map[string]decimal.Decimal{
			"Premium": d("9.99"),
		},
		Currencies:    defaultCurrencies(),
		Operators:     defaultOperators(),
		RechargePlans: []decimal.Decimal{d("199"), d("399"), d("599"), d("999")},
		Transport: []core.TicketListing{
			{ID: "1", Title: "IndiGo", Subtitle: "Non-stop 2h 15m", Depart: "06:30", Arrive: "08:45", Price: d("459")},
			{ID: "2", Title: "Air India", Subtitle: "Non-stop 2h 20m", Depart: "09:15", Arrive: "11:35", Price: d("520")},
			{ID: "3", Title: "SpiceJet", Subtitle: "Non-stop 2h 30m", Depart: "14:20", Arrive: "16:50", Price: d("420")},
		},
		Events: []core.TicketListing{
			{ID: "1", Title: "Coldplay World Tour", Subtitle: "Concert", Venue: "Wembley Stadium, London", Depart: "2024-07-15 20:00", Price: d("125")},
			{ID: "2", Title: "Tech Conference 2024", Subtitle: "Conference", Venue: "Moscone Center, San Francisco", Depart: "2024-08-20 09:00", Price: d("599")},
			{ID: "3", Title: "Football Championship", Subtitle: "Sports", Venue: "Madison Square Garden", Depart: "2024-09-10 19:30", Price: d("89")},
		},
		Assets: defaultAssets(),
		OptionChains: []core.OptionChain{
			{
				Symbol:   "AAPL",
				Expiries: []string{"2024-02-16", "2024-02-23", "2024-03-01", "2024-03-15", "2024-04-19", "2024-06-21"},
				Quotes: []core.OptionQuote{
					{Strike: d("175"), Call: d("12.50"), Put: d("2.30")},
					{Strike: d("180"), Call: d("8.75"), Put: d("3.45")},
					{Strike: d("185"), Call: d("5.20"), Put: d("5.20")},
					{Strike: d("190"), Call: d("2.80"), Put: d("7.65")},
					{Strike: d("195"), Call: d("1.25"), Put: d("11.20")},
				},
			},
		},
	}
}

func defaultCurrencies() []core.Currency {
	table := [][3]string{
		{"USD", "US Dollar", "1.00"},
		{"EUR", "Euro", "0.92"},
		{"GBP", "British Pound", "0.79"},
		{"JPY", "Japanese Yen", "149.25"},
		{"CAD", "Canadian Dollar", "1.36"},
		{"AUD", "Australian Dollar", "1.52"},
		{"CHF", "Swiss Franc", "0.88"},
		{"CNY", "Chinese Yuan", "7.24"},
		{"INR", "Indian Rupee", "83.12"},
		{"KRW", "South Korean Won", "1312.50"},
		{"SGD", "Singapore Dollar", "1.34"},
		{"HKD", "Hong Kong Dollar", "7.82"},
		{"MXN", "Mexican Peso", "17.89"},
		{"BRL", "Brazilian Real", "4.98"},
		{"RUB", "Russian Ruble", "92.45"},
		{"ZAR", "South African Rand", "18.76"},
		{"TRY", "Turkish Lira", "28.95"},
		{"THB", "Thai Baht", "35.67"},
		{"MYR", "Malaysian Ringgit", "4.67"},
		{"IDR", "Indonesian Rupiah", "15678.90"},
		{"PHP", "Philippine Peso", "55.89"},
		{"VND", "Vietnamese Dong", "24567.80"},
		{"ALGO", "Algorand", "0.1845"},
		{"USDC", "USD Coin", "1.0001"},
		{"BTC", "Bitcoin", "0.000023"},
		{"ETH", "Ethereum", "0.00041"},
		{"ADA", "Cardano", "2.15"},
		{"DOT", "Polkadot", "0.14"},
		{"MATIC", "Polygon", "1.25"},
		{"SOL", "Solana", "0.01"},
		{"AVAX", "Avalanche", "0.04"},
		{"LINK", "Chainlink", "0.067"},
		{"UNI", "Uniswap", "0.167"},
		{"LTC", "Litecoin", "0.014"},
		{"XRP", "Ripple", "1.67"},
		{"DOGE", "Dogecoin", "12.5"},
	}

	currencies := make([]core.Currency, 0, len(table))
	for _, row := range table {
		currencies = append(currencies, core.Currency{Code: row[0], Name: row[1], Rate: d(row[2])})
	}

	return currencies
}

func defaultOperators() []core.Operator {
	names := map[core.RechargeCategory][]string{
		core.RechargeMobile: {"Airtel", "Jio", "Vi", "BSNL"},
		core.RechargeDTH:    {"Tata Sky", "Airtel Digital TV", "Dish TV", "Sun Direct"},
		core.RechargeGaming: {"Steam", "Google Play", "App Store", "PlayStation Store"},
	}

	var operators []core.Operator
	for _, category := range []core.RechargeCategory{core.RechargeMobile, core.RechargeDTH, core.RechargeGaming} {
		for _, name := range names[category] {
			operators = append(operators, core.Operator{ID: slug(name), Name: name, Category: category})
		}
	}

	return operators
}

func defaultAssets() []core.TradeAsset {
	table := []struct {
		market core.Market
		rows   [][4]string
	}{
		{core.MarketStocks, [][4]string{
			{"AAPL", "Apple Inc.", "185.25", "2.34"},
			{"TSLA", "Tesla Inc.", "248.90", "-5.67"},
			{"GOOGL", "Alphabet Inc.", "138.45", "1.89"},
			{"MSFT", "Microsoft Corp.", "378.12", "4.23"},
			{"AMZN", "Amazon.com Inc.", "145.67", "-2.11"},
			{"NVDA", "NVIDIA Corp.", "875.30", "15.67"},
			{"META", "Meta Platforms", "312.45", "-8.23"},
			{"NFLX", "Netflix Inc.", "425.80", "7.90"},
			{"AMD", "Advanced Micro Devices", "112.35", "3.45"},
			{"CRM", "Salesforce Inc.", "198.75", "-4.12"},
			{"ORCL", "Oracle Corp.", "89.45", "1.23"},
			{"IBM", "IBM Corp.", "156.78", "-0.89"},
		}},
		{core.MarketCrypto, [][4]string{
			{"ALGO", "Algorand", "0.1845", "0.0098"},
			{"BTC", "Bitcoin", "43250.00", "892.34"},
			{"ETH", "Ethereum", "2485.67", "-45.23"},
			{"USDC", "USD Coin", "1.0001", "0.0001"},
			{"SOL", "Solana", "98.45", "6.78"},
			{"ADA", "Cardano", "0.465", "0.023"},
			{"DOT", "Polkadot", "7.12", "-0.34"},
			{"MATIC", "Polygon", "0.798", "0.045"},
			{"AVAX", "Avalanche", "24.67", "1.23"},
			{"LINK", "Chainlink", "14.89", "-0.67"},
		}},
		{core.MarketIndices, [][4]string{
			{"SPY", "S&P 500 ETF", "445.67", "3.45"},
			{"QQQ", "Nasdaq 100 ETF", "378.90", "-2.34"},
			{"IWM", "Russell 2000 ETF", "198.45", "1.67"},
			{"VTI", "Total Stock Market ETF", "234.12", "2.89"},
			{"GLD", "Gold ETF", "189.34", "-1.23"},
			{"TLT", "20+ Year Treasury ETF", "98.76", "0.45"},
		}},
	}

	var assets []core.TradeAsset
	for _, group := range table {
		for _, row := range group.rows {
			assets = append(assets, core.TradeAsset{
				Symbol: row[0],
				Name:   row[1],
				Market: group.market,
				Price:  d(row[2]),
				Change: d(row[3]),
			})
		}
	}

	return assets
}
