// Package fedsource retrieves Federal Reserve pages: fetching single
// documents and discovering candidate statement URLs from the FOMC
// calendar and press-release index pages.
package fedsource

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"fedwatch/internal/api"
	"fedwatch/internal/logger"
)

// Fetcher downloads and parses one document per call. All failures
// (network, non-2xx, timeout, malformed markup) come back as errors the
// caller treats as "document unavailable".
type Fetcher struct {
	client *api.Client
}

// NewFetcher creates a fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: api.NewClient(
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
	}
}

// Fetch retrieves a URL and parses the response body into a document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	logger.Debug(ctx, "Fetching document", "url", url)

	req := api.NewRequest(http.MethodGet, url).WithContext(ctx)
	for key, value := range api.BrowserHeaders() {
		req.WithHeader(key, value)
	}

	resp, err := f.client.DoWithRetry(req, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}
