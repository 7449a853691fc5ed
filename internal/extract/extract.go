// Package extract locates the publication date and policy body text inside
// a parsed Federal Reserve document. Extraction is heuristic: each field is
// tried through an ordered chain of independent strategies and the first
// success wins, so a malformed or missing element never propagates a
// failure.
package extract

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const dateLayout = "January 2, 2006"

var dateRe = regexp.MustCompile(`([A-Z][a-z]+)\s+(\d{1,2}),?\s+(\d{4})`)

type dateStrategy func(*goquery.Document) (time.Time, bool)

var dateStrategies = []dateStrategy{
	dateFromArticleTime,
	dateFromLastUpdate,
	dateFromReleaseMarker,
	dateFromTitle,
	dateFromAnyText,
}

// Date extracts the publication date, trying each strategy in order.
func Date(doc *goquery.Document) (time.Time, bool) {
	for _, strategy := range dateStrategies {
		if d, ok := strategy(doc); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func dateFromArticleTime(doc *goquery.Document) (time.Time, bool) {
	text := strings.TrimSpace(doc.Find("div.article__time").First().Text())
	if text == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, text)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func dateFromLastUpdate(doc *goquery.Document) (time.Time, bool) {
	text := strings.TrimSpace(doc.Find("div.lastUpdate").First().Text())
	if text == "" {
		return time.Time{}, false
	}
	return parseDateMatch(text)
}

func dateFromReleaseMarker(doc *goquery.Document) (time.Time, bool) {
	text := doc.Text()
	for _, marker := range []string{"For release at", "For immediate release"} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		// The date follows the release line closely.
		window := text[idx:]
		if len(window) > 300 {
			window = window[:300]
		}
		if d, ok := parseDateMatch(window); ok {
			return d, true
		}
	}
	return time.Time{}, false
}

func dateFromTitle(doc *goquery.Document) (time.Time, bool) {
	title := doc.Find("h1, h2, h3, h4, title").First()
	if title.Length() == 0 {
		return time.Time{}, false
	}
	return parseDateMatch(strings.TrimSpace(title.Text()))
}

func dateFromAnyText(doc *goquery.Document) (time.Time, bool) {
	return parseDateMatch(doc.Text())
}

// parseDateMatch pulls the first "Month D[D], YYYY" occurrence out of text.
func parseDateMatch(text string) (time.Time, bool) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, fmt.Sprintf("%s %s, %s", m[1], m[2], m[3]))
	if err != nil {
		// Capitalized word that is not a month name; not a date.
		return time.Time{}, false
	}
	return d, true
}

type textStrategy func(*goquery.Document) (string, bool)

var textStrategies = []textStrategy{
	textFromPrimaryContainer,
	textFromArticleContent,
	textFromContentAreas,
	textFromParagraphs,
	textFromBody,
}

// PolicyText extracts the policy-relevant body text. Returns the empty
// string when no strategy yields content; callers must treat empty or very
// short text as an extraction failure.
func PolicyText(doc *goquery.Document) string {
	for _, strategy := range textStrategies {
		if text, ok := strategy(doc); ok {
			return text
		}
	}
	return ""
}

// textFromPrimaryContainer reads the main statement column, keeping only
// substantial paragraphs or ones that mention the policy rate. Short
// paragraphs are navigation and footer boilerplate.
func textFromPrimaryContainer(doc *goquery.Document) (string, bool) {
	content := doc.Find("div.col-xs-12.col-sm-8.col-md-8").First()
	if content.Length() == 0 {
		return "", false
	}

	var parts []string
	content.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		lower := strings.ToLower(text)
		if len(text) > 100 || strings.Contains(lower, "federal funds rate") || strings.Contains(lower, "monetary policy") {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func textFromArticleContent(doc *goquery.Document) (string, bool) {
	content := doc.Find("div.article__content").First()
	if content.Length() == 0 {
		return "", false
	}
	return collapseSpace(content.Text()), true
}

func textFromContentAreas(doc *goquery.Document) (string, bool) {
	for _, selector := range []string{"main", "article", "#content", ".content", ".main-content"} {
		content := doc.Find(selector).First()
		if content.Length() > 0 {
			return collapseSpace(content.Text()), true
		}
	}
	return "", false
}

func textFromParagraphs(doc *goquery.Document) (string, bool) {
	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(p.Text()))
	})
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func textFromBody(doc *goquery.Document) (string, bool) {
	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", false
	}
	return collapseSpace(body.Text()), true
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
