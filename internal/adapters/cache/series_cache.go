package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"fxmonitor/internal/adapters"
	"fxmonitor/internal/domain"
)

// CachingSeriesClient is a read-through TTL memoizer in front of a
// SeriesClient, keyed by (symbol, window). It exists to bound the upstream
// call rate under frequent refresh; fetch failures are never memoized so a
// transient upstream error does not stick for a whole TTL.
type CachingSeriesClient struct {
	inner adapters.SeriesClient
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCachingSeriesClient(inner adapters.SeriesClient, maxEntries int64, ttl time.Duration) (*CachingSeriesClient, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxEntries,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create series cache failed: %w", err)
	}
	return &CachingSeriesClient{inner: inner, cache: c, ttl: ttl}, nil
}

func (c *CachingSeriesClient) FetchSeries(ctx context.Context, symbol string, window domain.WindowSpec) ([]domain.TimeSample, error) {
	key := toKey(symbol, window)
	if v, ok := c.cache.Get(key); ok {
		if samples, ok := v.([]domain.TimeSample); ok {
			return samples, nil
		}
	}

	samples, err := c.inner.FetchSeries(ctx, symbol, window)
	if err != nil {
		return nil, err
	}
	c.cache.SetWithTTL(key, samples, 1, c.ttl)
	return samples, nil
}

func (c *CachingSeriesClient) Close() { c.cache.Close() }

func toKey(symbol string, window domain.WindowSpec) string {
	return symbol + "|" + string(window)
}
