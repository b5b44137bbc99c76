package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fxmonitor/internal/domain"
)

// ChartClient fetches rate series from the chart API
// (GET {base}/v8/finance/chart/{symbol}?range=...&interval=...).
type ChartClient struct {
	http    *http.Client
	baseURL string
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchSeries returns the close-price series for symbol over the window
// preset, in chronological order. Samples the upstream publishes with a null
// close (gaps inside trading pauses) are skipped. An empty series is not an
// error: it means no data for the window yet.
func (c *ChartClient) FetchSeries(ctx context.Context, symbol string, window domain.WindowSpec) ([]domain.TimeSample, error) {
	if !window.Supported() {
		return nil, fmt.Errorf("%w: %q", domain.ErrWindowUnsupported, window)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chart base URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/v8/finance/chart/" + symbol
	q := u.Query()
	q.Set("range", window.ChartRange())
	q.Set("interval", window.ChartInterval())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart request for %q: %w", symbol, err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute chart request for %q: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for symbol %q: %s", resp.StatusCode, symbol, resp.Status)
	}

	var body chartResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode chart response for %q: %w", symbol, err)
	}

	if body.Chart.Error != nil {
		return nil, fmt.Errorf("chart api error for %q: %s (%s)", symbol, body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}

	result := body.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := result.Indicators.Quote[0].Close

	samples := make([]domain.TimeSample, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		samples = append(samples, domain.TimeSample{
			At:    time.Unix(ts, 0).UTC(),
			Price: *closes[i],
		})
	}
	return samples, nil
}

func NewChartClient(httpClient *http.Client, baseURL string) *ChartClient {
	return &ChartClient{http: httpClient, baseURL: baseURL}
}
