package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fxmonitor/internal/domain"
)

const cmbProviderName = "CMB"

// CMBClient fetches quotes from the China Merchants Bank rate API. The
// endpoint rejects requests without its own Referer/Origin headers. Rates
// arrive as a list under "body", matched by localized currency name.
type CMBClient struct {
	http    *http.Client
	url     string
	referer string
	origin  string
}

type cmbResponse struct {
	Body []cmbQuote `json:"body"`
}

// json.Number keeps the rates exactly as published, whether the upstream
// sends them as numbers or strings.
type cmbQuote struct {
	CcyNbr string      `json:"ccyNbr"`
	RthOfr json.Number `json:"rthOfr"`
	RtcOfr json.Number `json:"rtcOfr"`
}

func (c *CMBClient) Name() string { return cmbProviderName }

func (c *CMBClient) FetchQuote(ctx context.Context, currency domain.CurrencyCode) (domain.QuotePair, error) {
	if !currency.Supported() {
		return domain.QuotePair{}, fmt.Errorf("%w: %q", domain.ErrCurrencyUnsupported, currency)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.QuotePair{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Origin", c.origin)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.QuotePair{}, fmt.Errorf("%w: request failed: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.QuotePair{}, fmt.Errorf("%w: unexpected status code %d", domain.ErrQuoteUnavailable, resp.StatusCode)
	}

	var body cmbResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.QuotePair{}, fmt.Errorf("%w: failed to decode response: %v", domain.ErrQuoteUnavailable, err)
	}
	if len(body.Body) == 0 {
		return domain.QuotePair{}, fmt.Errorf("%w: response carries no quote records", domain.ErrQuoteUnavailable)
	}

	localName := currency.LocalName()
	for _, item := range body.Body {
		if strings.Contains(item.CcyNbr, localName) {
			return domain.QuotePair{
				SpotSell: item.RthOfr.String(),
				CashSell: item.RtcOfr.String(),
			}, nil
		}
	}
	return domain.QuotePair{}, fmt.Errorf("%w: no quote record for %s", domain.ErrQuoteUnavailable, currency)
}

func NewCMBClient(httpClient *http.Client, url, referer, origin string) *CMBClient {
	return &CMBClient{http: httpClient, url: url, referer: referer, origin: origin}
}
