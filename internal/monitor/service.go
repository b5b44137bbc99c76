package monitor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"fxmonitor/internal/adapters"
	"fxmonitor/internal/domain"
	"fxmonitor/internal/metrics"
)

const defaultProviderTimeout = 5 * time.Second

// metric label for the series upstream; bank providers label by Name().
const chartProviderLabel = "chart"

// Service assembles rate snapshots from the series upstream and the
// configured bank quote providers.
type Service struct {
	series          adapters.SeriesClient
	banks           []adapters.QuoteProvider
	met             *metrics.Metrics
	providerTimeout time.Duration
}

// BuildSnapshot fetches all providers for one (currency, window) and merges
// the results into a single snapshot. Provider failures collapse into an
// empty series or an absent quote; the only errors returned are
// configuration ones (unsupported currency or window), which mean the
// caller itself is misconfigured.
func (s *Service) BuildSnapshot(ctx context.Context, currency domain.CurrencyCode, window domain.WindowSpec) (domain.RateSnapshot, error) {
	if !currency.Supported() {
		return domain.RateSnapshot{}, fmt.Errorf("%w: %q", domain.ErrCurrencyUnsupported, currency)
	}
	if !window.Supported() {
		return domain.RateSnapshot{}, fmt.Errorf("%w: %q", domain.ErrWindowUnsupported, window)
	}

	start := time.Now()
	snap := domain.RateSnapshot{
		Currency:   currency,
		Window:     window,
		BankQuotes: make(map[string]*domain.QuotePair, len(s.banks)),
		BuiltAt:    start.UTC(),
	}

	// Providers are mutually independent and fill disjoint snapshot fields,
	// so they run concurrently; the mutex only guards the quotes map.
	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		snap.Series = s.fetchSeries(ctx, currency, window)
	}()

	for _, bank := range s.banks {
		wg.Add(1)
		go func(p adapters.QuoteProvider) {
			defer wg.Done()
			quote := s.fetchQuote(ctx, p, currency)
			mu.Lock()
			snap.BankQuotes[p.Name()] = quote
			mu.Unlock()
		}(bank)
	}

	wg.Wait()
	s.met.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
	return snap, nil
}

func (s *Service) fetchSeries(ctx context.Context, currency domain.CurrencyCode, window domain.WindowSpec) []domain.TimeSample {
	fetchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	samples, err := s.series.FetchSeries(fetchCtx, currency.SeriesSymbol(), window)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"provider": chartProviderLabel, "currency": currency}).
			Warn("series fetch failed, snapshot keeps an empty series")
		s.met.ProviderFetchesTotal.WithLabelValues(chartProviderLabel, "error").Inc()
		return nil
	}
	if len(samples) == 0 {
		s.met.ProviderFetchesTotal.WithLabelValues(chartProviderLabel, "empty").Inc()
		return nil
	}
	s.met.ProviderFetchesTotal.WithLabelValues(chartProviderLabel, "ok").Inc()
	return samples
}

func (s *Service) fetchQuote(ctx context.Context, p adapters.QuoteProvider, currency domain.CurrencyCode) *domain.QuotePair {
	fetchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	pair, err := p.FetchQuote(fetchCtx, currency)
	if err != nil {
		entry := logrus.WithError(err).WithFields(logrus.Fields{"provider": p.Name(), "currency": currency})
		if errors.Is(err, domain.ErrQuoteUnavailable) {
			entry.Warn("bank quote collapsed to absent")
		} else {
			entry.Error("unexpected bank quote failure, treating as absent")
		}
		s.met.ProviderFetchesTotal.WithLabelValues(p.Name(), "absent").Inc()
		return nil
	}
	s.met.ProviderFetchesTotal.WithLabelValues(p.Name(), "ok").Inc()
	return &pair
}

func NewService(series adapters.SeriesClient, banks []adapters.QuoteProvider, met *metrics.Metrics, providerTimeout time.Duration) *Service {
	if providerTimeout <= 0 {
		providerTimeout = defaultProviderTimeout
	}
	return &Service{series: series, banks: banks, met: met, providerTimeout: providerTimeout}
}
