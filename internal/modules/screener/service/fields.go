package service

// FieldDef describes one scannable field for the frontend field picker.
type FieldDef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Type        string `json:"type"`
	Category    string `json:"category"`
}

// Static catalog. Names follow the scanner's column identifiers.
var fieldCatalog = []FieldDef{
	{Name: "name", DisplayName: "Symbol", Type: "string", Category: "descriptive"},
	{Name: "description", DisplayName: "Description", Type: "string", Category: "descriptive"},
	{Name: "exchange", DisplayName: "Exchange", Type: "string", Category: "descriptive"},
	{Name: "type", DisplayName: "Instrument Type", Type: "string", Category: "descriptive"},
	{Name: "sector", DisplayName: "Sector", Type: "string", Category: "descriptive"},
	{Name: "industry", DisplayName: "Industry", Type: "string", Category: "descriptive"},

	{Name: "close", DisplayName: "Price", Type: "number", Category: "price"},
	{Name: "open", DisplayName: "Open", Type: "number", Category: "price"},
	{Name: "high", DisplayName: "High", Type: "number", Category: "price"},
	{Name: "low", DisplayName: "Low", Type: "number", Category: "price"},
	{Name: "change", DisplayName: "Change %", Type: "number", Category: "price"},
	{Name: "change_abs", DisplayName: "Change", Type: "number", Category: "price"},
	{Name: "price_52_week_high", DisplayName: "52 Week High", Type: "number", Category: "price"},
	{Name: "price_52_week_low", DisplayName: "52 Week Low", Type: "number", Category: "price"},

	{Name: "volume", DisplayName: "Volume", Type: "number", Category: "volume"},
	{Name: "average_volume_10d_calc", DisplayName: "Avg Volume (10d)", Type: "number", Category: "volume"},
	{Name: "relative_volume_10d_calc", DisplayName: "Relative Volume", Type: "number", Category: "volume"},

	{Name: "market_cap_basic", DisplayName: "Market Cap", Type: "number", Category: "fundamentals"},
	{Name: "price_earnings_ttm", DisplayName: "P/E (TTM)", Type: "number", Category: "fundamentals"},
	{Name: "earnings_per_share_basic_ttm", DisplayName: "EPS (TTM)", Type: "number", Category: "fundamentals"},
	{Name: "dividend_yield_recent", DisplayName: "Dividend Yield %", Type: "number", Category: "fundamentals"},
	{Name: "float_shares_outstanding", DisplayName: "Float Shares", Type: "number", Category: "fundamentals"},
	{Name: "beta_1_year", DisplayName: "Beta (1Y)", Type: "number", Category: "fundamentals"},

	{Name: "Perf.W", DisplayName: "Perf Week %", Type: "number", Category: "performance"},
	{Name: "Perf.1M", DisplayName: "Perf Month %", Type: "number", Category: "performance"},
	{Name: "Perf.3M", DisplayName: "Perf 3 Months %", Type: "number", Category: "performance"},
	{Name: "Perf.YTD", DisplayName: "Perf YTD %", Type: "number", Category: "performance"},
	{Name: "Perf.Y", DisplayName: "Perf Year %", Type: "number", Category: "performance"},
	{Name: "Volatility.D", DisplayName: "Volatility (Day)", Type: "number", Category: "performance"},

	{Name: "RSI", DisplayName: "RSI (14)", Type: "number", Category: "technicals"},
	{Name: "SMA50", DisplayName: "SMA 50", Type: "number", Category: "technicals"},
	{Name: "SMA200", DisplayName: "SMA 200", Type: "number", Category: "technicals"},
	{Name: "EMA20", DisplayName: "EMA 20", Type: "number", Category: "technicals"},
	{Name: "MACD.macd", DisplayName: "MACD Level", Type: "number", Category: "technicals"},
	{Name: "ADX", DisplayName: "ADX", Type: "number", Category: "technicals"},
}

func Fields() []FieldDef {
	return fieldCatalog
}

// Categories returns the distinct categories in catalog order.
func Categories() []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, f := range fieldCatalog {
		if _, dup := seen[f.Category]; dup {
			continue
		}
		seen[f.Category] = struct{}{}
		out = append(out, f.Category)
	}
	return out
}
