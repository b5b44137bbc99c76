package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fxmonitor/internal/domain"
)

func TestNewView_RendersQuotesAndTrend(t *testing.T) {
	builtAt := time.Date(2024, 11, 15, 10, 0, 0, 0, time.UTC)
	snap := domain.RateSnapshot{
		Currency: domain.EUR,
		Window:   domain.Window48h,
		Series:   sampleSeries(8.00, 8.40),
		BankQuotes: map[string]*domain.QuotePair{
			"BOC": {SpotSell: "836.67", CashSell: "839.29"},
			"CMB": nil,
		},
		BuiltAt: builtAt,
	}

	view := NewView(snap)

	require.Equal(t, "EUR", view.Currency)
	require.Equal(t, "48h", view.Window)
	require.Equal(t, 2, view.Samples)
	require.True(t, view.BuiltAt.Equal(builtAt))
	require.Equal(t, "836.67 / 839.29", view.BankQuotes["BOC"])
	require.Equal(t, "N/A", view.BankQuotes["CMB"])
	require.InDelta(t, 8.40, view.Trend.Current, 1e-9)
	require.InDelta(t, 5.0, view.Trend.DeltaPct, 1e-9)
}

func TestNewView_EmptySnapshotRendersAsNoData(t *testing.T) {
	snap := domain.RateSnapshot{
		Currency:   domain.GBP,
		Window:     domain.Window1h,
		BankQuotes: map[string]*domain.QuotePair{"BOC": nil, "CMB": nil},
	}

	view := NewView(snap)

	require.Zero(t, view.Trend.Current)
	require.Zero(t, view.Trend.DeltaPct)
	require.Zero(t, view.Samples)
	require.Equal(t, "N/A", view.BankQuotes["BOC"])
	require.Equal(t, "N/A", view.BankQuotes["CMB"])
}

func TestFormatQuote(t *testing.T) {
	require.Equal(t, "N/A", formatQuote(nil))
	require.Equal(t, "N/A", formatQuote(&domain.QuotePair{}))
	require.Equal(t, "836.67 / 839.29", formatQuote(&domain.QuotePair{SpotSell: "836.67", CashSell: "839.29"}))
	require.Equal(t, "836.67 / N/A", formatQuote(&domain.QuotePair{SpotSell: "836.67"}))
	require.Equal(t, "N/A / 839.29", formatQuote(&domain.QuotePair{CashSell: "839.29"}))

	// upstream placeholder text is passed through untouched
	require.Equal(t, "- / -", formatQuote(&domain.QuotePair{SpotSell: "-", CashSell: "-"}))
}
