package fedsource

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"fedwatch/internal/logger"
)

var monetaryPressRe = regexp.MustCompile(`pressreleases/monetary`)

var monthAbbrevs = []string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// Discovery finds candidate statement URLs. Three ordered link strategies
// run over two index pages: statement indicators on the FOMC calendar,
// monetary press-release links on the calendar as a fallback, and the
// latest press-release index which is always checked in addition.
type Discovery struct {
	baseURL     string
	calendarURL string
	pressURL    string
	timeout     time.Duration
}

// NewDiscovery creates a discovery over the configured index pages.
func NewDiscovery(baseURL, calendarURL, pressURL string, timeout time.Duration) *Discovery {
	return &Discovery{
		baseURL:     baseURL,
		calendarURL: calendarURL,
		pressURL:    pressURL,
		timeout:     timeout,
	}
}

// Discover returns zero or more candidate statement URLs. An unreachable
// page contributes zero locators; duplicates across pages are deduped but
// the caller must tolerate them regardless.
func (d *Discovery) Discover(ctx context.Context) []string {
	logger.Info(ctx, "Discovering statement links", "calendar", d.calendarURL)

	statementLinks, pressLinks := d.scanCalendar(ctx)

	urls := statementLinks
	if len(urls) == 0 {
		urls = pressLinks
	}

	urls = d.appendLatest(ctx, urls)

	logger.Info(ctx, "Statement discovery completed", "urls", len(urls))
	return urls
}

// scanCalendar collects both calendar strategies in one visit: links
// labelled "HTML" next to a "Statement:" indicator, and monetary
// press-release links mentioning a statement or a month.
func (d *Discovery) scanCalendar(ctx context.Context) (statementLinks, pressLinks []string) {
	c := d.newCollector()

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Attr("href")
		if href == "" {
			return
		}
		text := strings.TrimSpace(e.Text)

		if strings.Contains(text, "HTML") && strings.Contains(e.DOM.Parent().Text(), "Statement:") {
			full := d.absolute(href)
			statementLinks = appendUnique(statementLinks, full)
			logger.Debug(ctx, "Found statement link", "url", full)
			return
		}

		if monetaryPressRe.MatchString(href) && mentionsStatement(text) {
			pressLinks = appendUnique(pressLinks, d.absolute(href))
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Calendar page fetch failed", err, "url", r.Request.URL.String())
	})

	if err := c.Visit(d.calendarURL); err != nil {
		logger.ErrorWithErr(ctx, "Calendar discovery failed", err, "url", d.calendarURL)
	}
	c.Wait()

	return statementLinks, pressLinks
}

// appendLatest scans the latest press-release index for FOMC statement
// links and appends any not already collected.
func (d *Discovery) appendLatest(ctx context.Context, urls []string) []string {
	c := d.newCollector()

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Attr("href")
		if href == "" || !monetaryPressRe.MatchString(href) {
			return
		}
		lower := strings.ToLower(e.Text)
		if strings.Contains(lower, "fomc") || strings.Contains(lower, "statement") {
			full := d.absolute(href)
			before := len(urls)
			urls = appendUnique(urls, full)
			if len(urls) > before {
				logger.Debug(ctx, "Found latest press release", "url", full)
			}
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Press release page fetch failed", err, "url", r.Request.URL.String())
	})

	if err := c.Visit(d.pressURL); err != nil {
		logger.ErrorWithErr(ctx, "Press release discovery failed", err, "url", d.pressURL)
	}
	c.Wait()

	return urls
}

func (d *Discovery) newCollector() *colly.Collector {
	opts := []colly.CollectorOption{colly.MaxDepth(1), colly.Async(false)}
	if domain := hostOf(d.baseURL); domain != "" {
		opts = append(opts, colly.AllowedDomains(domain))
	}
	c := colly.NewCollector(opts...)
	c.SetRequestTimeout(d.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})
	return c
}

func (d *Discovery) absolute(href string) string {
	if strings.HasPrefix(href, "/") {
		return d.baseURL + href
	}
	return href
}

func mentionsStatement(text string) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "statement") {
		return true
	}
	for _, month := range monthAbbrevs {
		if strings.Contains(lower, month) {
			return true
		}
	}
	return false
}

func appendUnique(urls []string, u string) []string {
	for _, existing := range urls {
		if existing == u {
			return urls
		}
	}
	return append(urls, u)
}

func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
