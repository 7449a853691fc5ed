package interfaces

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// DocumentSource fetches a URL and returns the parsed document. Any
// retrieval or parse failure (network error, non-2xx, timeout, malformed
// markup) surfaces as an error the caller treats as "skip this document".
type DocumentSource interface {
	Fetch(ctx context.Context, url string) (*goquery.Document, error)
}
