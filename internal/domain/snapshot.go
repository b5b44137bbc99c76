package domain

import "time"

// QuotePair is one bank's published sell rates for a currency. Values are
// kept exactly as published (may be placeholder text); no arithmetic is ever
// performed on them.
type QuotePair struct {
	SpotSell string `json:"spot_sell"`
	CashSell string `json:"cash_sell"`
}

// TimeSample is one (timestamp, price) point of a rate series.
type TimeSample struct {
	At    time.Time `json:"at"`
	Price float64   `json:"price"`
}

// RateSnapshot is the self-contained result of one aggregation cycle.
// BankQuotes always carries one entry per configured bank provider; a nil
// value marks that provider's quote as absent. A snapshot with an empty
// series and all-absent quotes is still valid and renderable.
type RateSnapshot struct {
	Currency   CurrencyCode
	Window     WindowSpec
	Series     []TimeSample
	BankQuotes map[string]*QuotePair
	BuiltAt    time.Time
}

// Trend is the window delta derived from a series: last sample vs first.
type Trend struct {
	Current   float64 `json:"current"`
	Reference float64 `json:"reference"`
	DeltaAbs  float64 `json:"delta_abs"`
	DeltaPct  float64 `json:"delta_pct"`
}
