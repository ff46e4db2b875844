package universe

// seedInstruments is the built-in universe used when no instrument
// database is configured. Large-cap US stocks, index ETFs, and a few
// broad index mutual funds.
func seedInstruments() []Instrument {
	return []Instrument{
		{Symbol: "AAPL", Name: "Apple Inc.", Kind: "stock"},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Kind: "stock"},
		{Symbol: "GOOGL", Name: "Alphabet Inc. Class A", Kind: "stock"},
		{Symbol: "AMZN", Name: "Amazon.com, Inc.", Kind: "stock"},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Kind: "stock"},
		{Symbol: "META", Name: "Meta Platforms, Inc.", Kind: "stock"},
		{Symbol: "TSLA", Name: "Tesla, Inc.", Kind: "stock"},
		{Symbol: "BRK-B", Name: "Berkshire Hathaway Inc. Class B", Kind: "stock"},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Kind: "stock"},
		{Symbol: "JNJ", Name: "Johnson & Johnson", Kind: "stock"},
		{Symbol: "V", Name: "Visa Inc.", Kind: "stock"},
		{Symbol: "PG", Name: "Procter & Gamble Company", Kind: "stock"},
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Kind: "stock"},
		{Symbol: "UNH", Name: "UnitedHealth Group Incorporated", Kind: "stock"},
		{Symbol: "HD", Name: "The Home Depot, Inc.", Kind: "stock"},
		{Symbol: "KO", Name: "The Coca-Cola Company", Kind: "stock"},
		{Symbol: "PEP", Name: "PepsiCo, Inc.", Kind: "stock"},
		{Symbol: "COST", Name: "Costco Wholesale Corporation", Kind: "stock"},
		{Symbol: "WMT", Name: "Walmart Inc.", Kind: "stock"},
		{Symbol: "DIS", Name: "The Walt Disney Company", Kind: "stock"},
		{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Kind: "etf"},
		{Symbol: "IVV", Name: "iShares Core S&P 500 ETF", Kind: "etf"},
		{Symbol: "VOO", Name: "Vanguard S&P 500 ETF", Kind: "etf"},
		{Symbol: "VTI", Name: "Vanguard Total Stock Market ETF", Kind: "etf"},
		{Symbol: "QQQ", Name: "Invesco QQQ Trust", Kind: "etf"},
		{Symbol: "IWM", Name: "iShares Russell 2000 ETF", Kind: "etf"},
		{Symbol: "EFA", Name: "iShares MSCI EAFE ETF", Kind: "etf"},
		{Symbol: "AGG", Name: "iShares Core US Aggregate Bond ETF", Kind: "etf"},
		{Symbol: "GLD", Name: "SPDR Gold Shares", Kind: "etf"},
		{Symbol: "VFIAX", Name: "Vanguard 500 Index Fund Admiral Shares", Kind: "mf"},
		{Symbol: "VTSAX", Name: "Vanguard Total Stock Market Index Fund Admiral Shares", Kind: "mf"},
		{Symbol: "FXAIX", Name: "Fidelity 500 Index Fund", Kind: "mf"},
		{Symbol: "SWPPX", Name: "Schwab S&P 500 Index Fund", Kind: "mf"},
		{Symbol: "VBTLX", Name: "Vanguard Total Bond Market Index Fund Admiral Shares", Kind: "mf"},
		{Symbol: "VTIAX", Name: "Vanguard Total International Stock Index Fund Admiral Shares", Kind: "mf"},
	}
}
