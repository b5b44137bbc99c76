package adapters

import (
	"context"

	"fxmonitor/internal/domain"
)

// SeriesClient fetches the (timestamp, price) series for a chart symbol over
// one of the fixed window presets. An empty slice with a nil error means the
// upstream simply has no data for the window.
type SeriesClient interface {
	FetchSeries(ctx context.Context, symbol string, window domain.WindowSpec) ([]domain.TimeSample, error)
}

// QuoteProvider fetches a bank's current sell quotes for a currency. Every
// expected upstream failure is returned wrapped around
// domain.ErrQuoteUnavailable so callers can collapse it to "absent".
type QuoteProvider interface {
	Name() string
	FetchQuote(ctx context.Context, currency domain.CurrencyCode) (domain.QuotePair, error)
}
