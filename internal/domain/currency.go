package domain

// CurrencyCode identifies one of the monitored foreign currencies, always
// quoted against CNY.
type CurrencyCode string

const (
	EUR CurrencyCode = "EUR"
	USD CurrencyCode = "USD"
	HKD CurrencyCode = "HKD"
	GBP CurrencyCode = "GBP"
	JPY CurrencyCode = "JPY"
)

// currencyInfo ties a code to the localized display name bank pages key
// their rows by, and to the symbol the chart upstream understands.
type currencyInfo struct {
	localName string
	symbol    string
}

var currencies = map[CurrencyCode]currencyInfo{
	EUR: {localName: "欧元", symbol: "EURCNY=X"},
	USD: {localName: "美元", symbol: "CNY=X"},
	HKD: {localName: "港币", symbol: "HKDCNY=X"},
	GBP: {localName: "英镑", symbol: "GBPCNY=X"},
	JPY: {localName: "日元", symbol: "JPYCNY=X"},
}

func (c CurrencyCode) Supported() bool {
	_, ok := currencies[c]
	return ok
}

// LocalName returns the localized display name used as the row key on bank
// quote pages. Empty for unsupported codes.
func (c CurrencyCode) LocalName() string {
	return currencies[c].localName
}

// SeriesSymbol returns the chart upstream symbol for the CODE/CNY pair.
// Empty for unsupported codes.
func (c CurrencyCode) SeriesSymbol() string {
	return currencies[c].symbol
}

// SupportedCurrencies returns the fixed monitored set in a stable order.
func SupportedCurrencies() []CurrencyCode {
	return []CurrencyCode{EUR, USD, HKD, GBP, JPY}
}
