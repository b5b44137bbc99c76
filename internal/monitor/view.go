package monitor

import (
	"time"

	"fxmonitor/internal/domain"
)

const noQuoteMarker = "N/A"

// View is the render-ready shape of one snapshot, handed to the display
// layer: trend numbers plus one "spot / cash" line per bank.
type View struct {
	Currency   string            `json:"currency"`
	Window     string            `json:"window"`
	Trend      domain.Trend      `json:"trend"`
	BankQuotes map[string]string `json:"bank_quotes"`
	Samples    int               `json:"samples"`
	BuiltAt    time.Time         `json:"built_at"`
}

func NewView(snap domain.RateSnapshot) View {
	quotes := make(map[string]string, len(snap.BankQuotes))
	for name, pair := range snap.BankQuotes {
		quotes[name] = formatQuote(pair)
	}
	return View{
		Currency:   string(snap.Currency),
		Window:     string(snap.Window),
		Trend:      ComputeTrend(snap.Series),
		BankQuotes: quotes,
		Samples:    len(snap.Series),
		BuiltAt:    snap.BuiltAt,
	}
}

// formatQuote renders the published pair as "spot / cash". Absent quotes
// and blank published cells both become the no-data marker; published
// placeholder text is passed through as-is.
func formatQuote(pair *domain.QuotePair) string {
	if pair == nil {
		return noQuoteMarker
	}
	spot, cash := pair.SpotSell, pair.CashSell
	if spot == "" && cash == "" {
		return noQuoteMarker
	}
	if spot == "" {
		spot = noQuoteMarker
	}
	if cash == "" {
		cash = noQuoteMarker
	}
	return spot + " / " + cash
}
