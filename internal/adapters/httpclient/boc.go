package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"fxmonitor/internal/domain"
)

const bocProviderName = "BOC"

// BOCClient scrapes the Bank of China published-rates page. The page is an
// uncontracted UTF-8 HTML table keyed by localized currency name: spot sell
// is the 4th cell of a row, cash sell the 5th.
type BOCClient struct {
	http *http.Client
	url  string
}

func (c *BOCClient) Name() string { return bocProviderName }

func (c *BOCClient) FetchQuote(ctx context.Context, currency domain.CurrencyCode) (domain.QuotePair, error) {
	if !currency.Supported() {
		return domain.QuotePair{}, fmt.Errorf("%w: %q", domain.ErrCurrencyUnsupported, currency)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.QuotePair{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.QuotePair{}, fmt.Errorf("%w: request failed: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.QuotePair{}, fmt.Errorf("%w: unexpected status code %d", domain.ErrQuoteUnavailable, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.QuotePair{}, fmt.Errorf("%w: failed to parse page: %v", domain.ErrQuoteUnavailable, err)
	}

	pair, found := findRateRow(doc, currency.LocalName())
	if !found {
		// Currency not listed today, or the table layout drifted. Either
		// way the quote is absent, not the cycle broken.
		return domain.QuotePair{}, fmt.Errorf("%w: no table row for %s", domain.ErrQuoteUnavailable, currency)
	}
	return pair, nil
}

func findRateRow(doc *goquery.Document, localName string) (domain.QuotePair, bool) {
	var pair domain.QuotePair
	var found bool
	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 5 {
			return true
		}
		if !strings.Contains(strings.TrimSpace(cells.Eq(0).Text()), localName) {
			return true
		}
		pair = domain.QuotePair{
			SpotSell: strings.TrimSpace(cells.Eq(3).Text()),
			CashSell: strings.TrimSpace(cells.Eq(4).Text()),
		}
		found = true
		return false
	})
	return pair, found
}

func NewBOCClient(httpClient *http.Client, url string) *BOCClient {
	return &BOCClient{http: httpClient, url: url}
}
