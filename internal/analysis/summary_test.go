package analysis

import (
	"strings"
	"testing"

	"fedwatch/internal/types"
)

func TestGenerateSummarySections(t *testing.T) {
	statement := &types.StatementRecord{
		Date:               "2024-01-31",
		Text:               "The federal funds rate was held steady. Inflation risk remains elevated.",
		TighteningScore:    62.5,
		TighteningKeywords: []string{"hawkish", "inflation risk"},
		PolicyDecisions:    []string{"Rate Decision: maintain the target range at 5-1/4 percent"},
		URL:                "https://www.federalreserve.gov/newsevents/pressreleases/monetary20240131a.htm",
	}

	summary := GenerateSummary(statement, "Moderate tightening shift: +10.0 points")

	for _, want := range []string{
		"Date: January 31, 2024",
		"Tightening Score: 62.5/100",
		"Policy Shift: Moderate tightening shift: +10.0 points",
		"Key Policy Decisions:\n- Rate Decision: maintain the target range at 5-1/4 percent",
		"Tightening Signals:\n- hawkish\n- inflation risk",
		"1. The federal funds rate was held steady.",
		"2. Inflation risk remains elevated.",
		"Full statement: https://www.federalreserve.gov/newsevents/pressreleases/monetary20240131a.htm",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary missing %q:\n%s", want, summary)
		}
	}
}

func TestGenerateSummaryExcerptLimitAndDedup(t *testing.T) {
	// Seven relevant sentences, the first duplicated: excerpts cap at five
	// distinct sentences in order of appearance.
	text := "The federal funds rate was discussed. " +
		"The federal funds rate was discussed. " +
		"Inflation risk remains elevated. " +
		"The target range stays put. " +
		"Monetary policy is restrictive. " +
		"The interest rate outlook firmed. " +
		"The federal funds rate may rise further. " +
		"Nothing relevant here."

	statement := &types.StatementRecord{
		Date:            "2024-03-20",
		Text:            text,
		TighteningScore: 40,
		URL:             "https://example.org/statement",
	}

	summary := GenerateSummary(statement, "No significant policy shift: 0.0 points")

	excerpts := 0
	seen := make(map[string]bool)
	for _, line := range strings.Split(summary, "\n") {
		if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && line[1] == '.' {
			excerpts++
			if seen[line[3:]] {
				t.Errorf("Duplicate excerpt: %q", line)
			}
			seen[line[3:]] = true
		}
	}
	if excerpts != 5 {
		t.Errorf("Expected 5 excerpts, got %d:\n%s", excerpts, summary)
	}
	if strings.Contains(summary, "Nothing relevant here") {
		t.Errorf("Irrelevant sentence should not be excerpted:\n%s", summary)
	}
}

func TestGenerateSummaryUnparseableDate(t *testing.T) {
	statement := &types.StatementRecord{
		Date: "sometime-2024",
		Text: "Short.",
		URL:  "https://example.org",
	}

	summary := GenerateSummary(statement, "No previous statement for comparison")

	if !strings.Contains(summary, "Date: sometime-2024") {
		t.Errorf("Unparseable date should pass through verbatim:\n%s", summary)
	}
}
